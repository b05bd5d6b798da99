// Package png decodes the chunk chain of a PNG image. Chunk CRCs are
// recorded as stored but never validated; image data stays compressed.
package png

import (
	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// Signature is the eight-byte PNG file signature.
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// HeaderSize is the size of a chunk length plus chunk type.
const HeaderSize = 8

// CRCSize is the size of the checksum trailing every chunk payload.
const CRCSize = 4

// ParseHeader decodes an 8-byte chunk header: a big-endian length followed
// by the 4-byte chunk type. The header is terminal for IEND.
//
// b must hold at least HeaderSize bytes.
func ParseHeader(b []byte) types.BlockHeader {
	typ := uint32(binary.Uint(b[4:HeaderSize], 4, binary.BigEndian))
	return types.BlockHeader{
		Terminal: types.ChunkType(typ) == types.ChunkIEND,
		Type:     typ,
		Length:   uint32(binary.Uint(b[:4], 4, binary.BigEndian)),
	}
}

// Package flac decodes the metadata block chain that follows the "fLaC"
// stream marker. Audio frames after the last metadata block are not read.
package flac

import (
	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// Signature is the FLAC stream marker.
var Signature = []byte("fLaC")

// HeaderSize is the size of a metadata block header.
const HeaderSize = 4

// ParseHeader decodes a 4-byte metadata block header:
//
//	[last(1) | type(7)] [length(24), big-endian]
//
// b must hold at least HeaderSize bytes. The returned Offset is zero; the
// walker fills it in.
func ParseHeader(b []byte) types.BlockHeader {
	return types.BlockHeader{
		Terminal: b[0]&0x80 != 0,
		Type:     uint32(b[0] & 0x7F),
		Length:   uint32(binary.Uint(b[1:HeaderSize], 3, binary.BigEndian)),
	}
}

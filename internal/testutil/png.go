package testutil

import (
	"bytes"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// PNGSignature is the eight-byte PNG file signature.
var PNGSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNGStream assembles a PNG chunk chain.
type PNGStream struct {
	buf bytes.Buffer
	sw  *binary.SafeWriter
}

// NewPNG starts a stream with the PNG signature.
func NewPNG() *PNGStream {
	s := &PNGStream{}
	s.sw = binary.NewSafeWriter(&s.buf)
	_ = s.sw.WriteBytes(PNGSignature)
	return s
}

// Chunk appends a chunk with the given 4-character type, payload and a
// CRC of 0xDEADBEEF (CRCs are never validated).
func (s *PNGStream) Chunk(typ string, payload []byte) *PNGStream {
	return s.ChunkCRC(typ, payload, 0xDEADBEEF)
}

// ChunkCRC appends a chunk with an explicit CRC value.
func (s *PNGStream) ChunkCRC(typ string, payload []byte, crc uint32) *PNGStream {
	_ = binary.Write(s.sw, uint32(len(payload)))
	_ = s.sw.WriteString(typ)
	_ = s.sw.WriteBytes(payload)
	_ = binary.Write(s.sw, crc)
	return s
}

// Raw appends arbitrary bytes.
func (s *PNGStream) Raw(b []byte) *PNGStream {
	_ = s.sw.WriteBytes(b)
	return s
}

// Bytes returns the assembled stream.
func (s *PNGStream) Bytes() []byte {
	return s.buf.Bytes()
}

// IHDRPayload encodes a 13-byte IHDR payload.
func IHDRPayload(h *types.ImageHeader) []byte {
	buf, sw := newWriter()
	_ = binary.Write(sw, h.Width)
	_ = binary.Write(sw, h.Height)
	_ = sw.WriteBytes([]byte{h.BitDepth, h.ColorType, h.Compression, h.Filter, h.Interlace})
	return buf.Bytes()
}

// PLTEPayload encodes palette entries.
func PLTEPayload(entries ...types.RGB) []byte {
	out := make([]byte, 0, 3*len(entries))
	for _, e := range entries {
		out = append(out, e.R, e.G, e.B)
	}
	return out
}

// TEXtPayload encodes a tEXt payload. keyword and text are written as
// raw bytes, so callers pass Latin-1 encoded strings.
func TEXtPayload(keyword, text string) []byte {
	out := append([]byte(keyword), 0)
	return append(out, text...)
}

// MinimalPNG returns a 1x1 truecolor PNG chain: IHDR, one IDAT, IEND.
func MinimalPNG() []byte {
	return NewPNG().
		Chunk("IHDR", IHDRPayload(&types.ImageHeader{Width: 1, Height: 1, BitDepth: 8, ColorType: 2})).
		Chunk("IDAT", []byte{0x78, 0x9c, 0x63, 0x60, 0x60, 0x60, 0x00, 0x00, 0x00, 0x04, 0x00, 0x01}).
		Chunk("IEND", nil).
		Bytes()
}

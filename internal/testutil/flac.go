// Package testutil builds synthetic FLAC and PNG streams for tests.
package testutil

import (
	"bytes"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// FLACSignature is the FLAC stream marker.
const FLACSignature = "fLaC"

// FLACStream assembles a FLAC metadata chain.
type FLACStream struct {
	buf bytes.Buffer
	sw  *binary.SafeWriter
}

// NewFLAC starts a stream with the "fLaC" signature.
func NewFLAC() *FLACStream {
	s := &FLACStream{}
	s.sw = binary.NewSafeWriter(&s.buf)
	_ = s.sw.WriteString(FLACSignature)
	return s
}

// Block appends a metadata block header followed by payload.
func (s *FLACStream) Block(typ uint8, last bool, payload []byte) *FLACStream {
	_ = s.sw.WriteBytes(FLACHeader(typ, last, uint32(len(payload))))
	_ = s.sw.WriteBytes(payload)
	return s
}

// Raw appends arbitrary bytes, e.g. to build truncated streams.
func (s *FLACStream) Raw(b []byte) *FLACStream {
	_ = s.sw.WriteBytes(b)
	return s
}

// Bytes returns the assembled stream.
func (s *FLACStream) Bytes() []byte {
	return s.buf.Bytes()
}

// FLACHeader encodes a 4-byte metadata block header.
func FLACHeader(typ uint8, last bool, length uint32) []byte {
	h := make([]byte, 4)
	h[0] = typ & 0x7F
	if last {
		h[0] |= 0x80
	}
	binary.PutUint(h[1:], uint64(length), 3, binary.BigEndian)
	return h
}

func newWriter() (*bytes.Buffer, *binary.SafeWriter) {
	buf := &bytes.Buffer{}
	return buf, binary.NewSafeWriter(buf)
}

// StreamInfoPayload encodes si as a 34-byte STREAMINFO payload.
// Channels and BitsPerSample are stored minus one, as on the wire.
func StreamInfoPayload(si *types.StreamInfo) []byte {
	buf, sw := newWriter()
	_ = binary.Write(sw, si.MinBlockSize)
	_ = binary.Write(sw, si.MaxBlockSize)
	_ = sw.WriteUint(uint64(si.MinFrameSize), 3, binary.BigEndian)
	_ = sw.WriteUint(uint64(si.MaxFrameSize), 3, binary.BigEndian)

	packed := uint64(si.SampleRate)<<44 |
		uint64((si.Channels-1)&0x07)<<41 |
		uint64((si.BitsPerSample-1)&0x1F)<<36 |
		si.TotalSamples&0xFFFFFFFFF
	_ = binary.Write(sw, packed)
	_ = sw.WriteBytes(si.MD5[:])
	return buf.Bytes()
}

// ApplicationPayload encodes an APPLICATION payload.
func ApplicationPayload(id uint32, data []byte) []byte {
	buf, sw := newWriter()
	_ = binary.Write(sw, id)
	_ = sw.WriteBytes(data)
	return buf.Bytes()
}

// SeekTablePayload encodes a SEEKTABLE payload.
func SeekTablePayload(points ...types.SeekPoint) []byte {
	buf, sw := newWriter()
	for _, p := range points {
		_ = binary.Write(sw, p.FirstSample)
		_ = binary.Write(sw, p.FrameOffset)
		_ = binary.Write(sw, p.Samples)
	}
	return buf.Bytes()
}

// VorbisCommentPayload encodes a VORBIS_COMMENT payload with
// little-endian lengths.
func VorbisCommentPayload(vendor string, fields ...string) []byte {
	buf, sw := newWriter()
	_ = binary.WriteLE(sw, uint32(len(vendor)))
	_ = sw.WriteString(vendor)
	_ = binary.WriteLE(sw, uint32(len(fields)))
	for _, f := range fields {
		_ = binary.WriteLE(sw, uint32(len(f)))
		_ = sw.WriteString(f)
	}
	return buf.Bytes()
}

// CuesheetPayload encodes a CUESHEET payload.
func CuesheetPayload(cs *types.Cuesheet) []byte {
	buf, sw := newWriter()

	catalog := make([]byte, 128)
	copy(catalog, cs.CatalogNumber)
	_ = sw.WriteBytes(catalog)
	_ = binary.Write(sw, cs.LeadInSamples)

	var flags uint8
	if cs.IsCD {
		flags |= 0x80
	}
	_ = binary.Write(sw, flags)
	_ = sw.WriteBytes(make([]byte, 258))
	_ = binary.Write(sw, uint8(len(cs.Tracks)))

	for _, tr := range cs.Tracks {
		_ = binary.Write(sw, tr.Offset)
		_ = binary.Write(sw, tr.Number)

		isrc := make([]byte, 12)
		copy(isrc, tr.ISRC)
		_ = sw.WriteBytes(isrc)

		var tf uint8
		if !tr.IsAudio {
			tf |= 0x80
		}
		if tr.PreEmphasis {
			tf |= 0x40
		}
		_ = binary.Write(sw, tf)
		_ = sw.WriteBytes(make([]byte, 13))
		_ = binary.Write(sw, uint8(len(tr.Indices)))

		for _, idx := range tr.Indices {
			_ = binary.Write(sw, idx.Offset)
			_ = binary.Write(sw, idx.Number)
			_ = sw.WriteBytes(make([]byte, 3))
		}
	}
	return buf.Bytes()
}

// PicturePayload encodes a PICTURE payload.
func PicturePayload(p *types.Picture) []byte {
	buf, sw := newWriter()
	_ = binary.Write(sw, uint32(p.Type))
	_ = binary.Write(sw, uint32(len(p.MIMEType)))
	_ = sw.WriteString(p.MIMEType)
	_ = binary.Write(sw, uint32(len(p.Description)))
	_ = sw.WriteString(p.Description)
	_ = binary.Write(sw, p.Width)
	_ = binary.Write(sw, p.Height)
	_ = binary.Write(sw, p.ColorDepth)
	_ = binary.Write(sw, p.ColorCount)
	_ = binary.Write(sw, uint32(len(p.Data)))
	_ = sw.WriteBytes(p.Data)
	return buf.Bytes()
}

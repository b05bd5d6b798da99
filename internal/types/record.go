// Package types provides the decoded record model shared by every format.
//
// A stream is a chain of blocks. Each block is described by a BlockHeader
// and decodes into exactly one Record variant. The set of variants is
// closed: Record carries an unexported marker method, so only the types in
// this package implement it.
package types

import "fmt"

// BlockHeader describes one block (FLAC metadata block or PNG chunk).
type BlockHeader struct {
	// Terminal is set on the block that ends the chain: the FLAC
	// last-metadata-block flag, or a PNG IEND chunk.
	Terminal bool

	// Type is the type tag: the 7-bit FLAC block type, or the PNG chunk
	// type read as a big-endian uint32.
	Type uint32

	// Length is the exact number of payload bytes following the header.
	Length uint32

	// Offset is the absolute stream offset of the header.
	Offset int64

	// CRC is the PNG chunk checksum as stored (never validated). Zero for FLAC.
	CRC uint32 `json:",omitempty"`
}

// Header returns h. Records embed BlockHeader to satisfy Record.
func (h BlockHeader) Header() BlockHeader {
	return h
}

// Record is one decoded block.
type Record interface {
	// Header returns the header the record was decoded from.
	Header() BlockHeader

	// Kind returns the block type name, e.g. "STREAMINFO" or "IHDR".
	Kind() string

	isRecord()
}

// RawUnknown holds the payload of a block whose type is not recognized.
type RawUnknown struct {
	Data []byte `json:"-"`
	Name string
	BlockHeader
}

// Kind returns the format-specific name for the unknown type.
func (r *RawUnknown) Kind() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("UNKNOWN(%d)", r.Type)
}

func (*RawUnknown) isRecord() {}

// Clone returns a copy of b that shares no memory with it.
// Decoders use it so every record owns its buffers.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

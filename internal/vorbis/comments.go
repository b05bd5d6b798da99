// Package vorbis decodes Vorbis comment blocks.
//
// The layout is shared by FLAC VORBIS_COMMENT blocks and Ogg comment
// headers: a vendor string followed by "NAME=value" fields, each prefixed
// by a 32-bit length. Unlike the surrounding FLAC container, every length
// and count in the block is little-endian.
package vorbis

import (
	"fmt"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// fieldLengthSize is the size of each little-endian length prefix.
const fieldLengthSize = 4

// Decode decodes a Vorbis comment payload.
//
// Field boundaries are cumulative: each field starts right after the
// previous field's length prefix and text. The payload must be consumed
// exactly.
func Decode(payload []byte) (*types.VorbisComment, error) {
	r := binary.NewReader(payload)

	vendorLen, err := binary.ReadLE[uint32](r, "vendor string length")
	if err != nil {
		return nil, err
	}
	vendor, err := r.ReadString(int(vendorLen), "vendor string")
	if err != nil {
		return nil, err
	}

	count, err := binary.ReadLE[uint32](r, "comment field count")
	if err != nil {
		return nil, err
	}

	// Every field needs at least its length prefix.
	if uint64(count)*fieldLengthSize > uint64(r.Remaining()) {
		return nil, types.Nesting("comment fields", int64(r.Offset()),
			"%d fields need at least %d bytes, %d remain",
			count, uint64(count)*fieldLengthSize, r.Remaining())
	}

	fields := make([]types.CommentField, 0, count)
	for i := uint32(0); i < count; i++ {
		what := fmt.Sprintf("comment field %d", i)

		length, err := binary.ReadLE[uint32](r, what+" length")
		if err != nil {
			return nil, err
		}
		text, err := r.ReadString(int(length), what)
		if err != nil {
			return nil, err
		}

		fields = append(fields, types.CommentField{Length: length, Text: text})
	}

	if err := r.ExpectEnd("vorbis comment"); err != nil {
		return nil, err
	}

	return &types.VorbisComment{Vendor: vendor, Fields: fields}, nil
}

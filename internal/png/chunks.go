package png

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

type decodeFunc func(h types.BlockHeader, payload []byte) (types.Record, error)

var decoders = map[types.ChunkType]decodeFunc{
	types.ChunkIHDR: decodeIHDR,
	types.ChunkPLTE: decodePLTE,
	types.ChunkIDAT: decodeIDAT,
	types.ChunkIEND: decodeIEND,
	types.ChunkTEXt: decodeText,
}

// DecodeChunk decodes payload according to h.Type. Chunks without a
// decoder yield a *types.RawUnknown named by their 4-character tag.
func DecodeChunk(h types.BlockHeader, payload []byte) (types.Record, error) {
	if fn, ok := decoders[types.ChunkType(h.Type)]; ok {
		return fn(h, payload)
	}
	return &types.RawUnknown{
		BlockHeader: h,
		Name:        types.ChunkType(h.Type).String(),
		Data:        types.Clone(payload),
	}, nil
}

const ihdrSize = 13

func decodeIHDR(h types.BlockHeader, payload []byte) (types.Record, error) {
	if len(payload) != ihdrSize {
		return nil, types.Malformed("IHDR", 0, "size %d, expected %d", len(payload), ihdrSize)
	}

	cr := binary.NewChainReader(binary.NewReader(payload))
	ihdr := &types.ImageHeader{
		BlockHeader: h,
		Width:       binary.ReadChained[uint32](cr, binary.BigEndian, "width"),
		Height:      binary.ReadChained[uint32](cr, binary.BigEndian, "height"),
		BitDepth:    binary.ReadChained[uint8](cr, binary.BigEndian, "bit depth"),
		ColorType:   binary.ReadChained[uint8](cr, binary.BigEndian, "color type"),
		Compression: binary.ReadChained[uint8](cr, binary.BigEndian, "compression method"),
		Filter:      binary.ReadChained[uint8](cr, binary.BigEndian, "filter method"),
		Interlace:   binary.ReadChained[uint8](cr, binary.BigEndian, "interlace method"),
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}
	return ihdr, nil
}

// maxPaletteEntries is the largest palette a PNG may carry.
const maxPaletteEntries = 256

func decodePLTE(h types.BlockHeader, payload []byte) (types.Record, error) {
	if rem := len(payload) % 3; rem != 0 {
		return nil, types.Malformed("PLTE", int64(len(payload)-rem),
			"length %d is not a multiple of 3", len(payload))
	}
	if n := len(payload) / 3; n > maxPaletteEntries {
		return nil, types.Malformed("PLTE", 0, "%d entries, at most %d allowed", n, maxPaletteEntries)
	}

	entries := make([]types.RGB, len(payload)/3)
	for i := range entries {
		p := payload[3*i:]
		entries[i] = types.RGB{R: p[0], G: p[1], B: p[2]}
	}
	return &types.Palette{BlockHeader: h, Entries: entries}, nil
}

func decodeIDAT(h types.BlockHeader, payload []byte) (types.Record, error) {
	return &types.ImageData{BlockHeader: h, Data: types.Clone(payload)}, nil
}

func decodeIEND(h types.BlockHeader, payload []byte) (types.Record, error) {
	if len(payload) != 0 {
		return nil, types.Malformed("IEND", 0, "%d payload bytes, expected none", len(payload))
	}
	return &types.ImageTrailer{BlockHeader: h}, nil
}

const maxKeywordLen = 79

// decodeText decodes a tEXt chunk: a Latin-1 keyword, a NUL separator and
// Latin-1 text running to the end of the payload.
func decodeText(h types.BlockHeader, payload []byte) (types.Record, error) {
	sep := bytes.IndexByte(payload, 0)
	switch {
	case sep < 0:
		return nil, types.Malformed("tEXt keyword", 0, "missing NUL separator")
	case sep == 0 || sep > maxKeywordLen:
		return nil, types.Malformed("tEXt keyword", 0, "length %d, expected 1-%d", sep, maxKeywordLen)
	}

	dec := charmap.ISO8859_1.NewDecoder()
	keyword, err := dec.Bytes(payload[:sep])
	if err != nil {
		return nil, types.Malformed("tEXt keyword", 0, "%v", err)
	}
	text, err := dec.Bytes(payload[sep+1:])
	if err != nil {
		return nil, types.Malformed("tEXt text", int64(sep+1), "%v", err)
	}

	return &types.TextChunk{BlockHeader: h, Keyword: string(keyword), Text: string(text)}, nil
}

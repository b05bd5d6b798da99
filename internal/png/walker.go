package png

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/registry"
	"github.com/simonhull/finfo/internal/types"
)

// maxChunkLength is the largest length the PNG format allows (2^31-1).
const maxChunkLength = 1<<31 - 1

// Entry registers PNG with a format sniffer.
func Entry() registry.Entry {
	return registry.Entry{
		Format:    types.FormatPNG,
		Signature: Signature,
		NewWalker: NewWalker,
	}
}

// Walker yields PNG chunks until IEND.
type Walker struct {
	c    *binary.Cursor
	cfg  registry.Config
	err  error
	done bool
}

// NewWalker creates a walker over c, positioned just after the signature.
func NewWalker(c *binary.Cursor, cfg registry.Config) registry.Walker {
	return &Walker{c: c, cfg: cfg}
}

// Next decodes the next chunk. It returns io.EOF once IEND has been
// returned.
func (w *Walker) Next() (types.Record, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.done {
		return nil, io.EOF
	}

	off := w.c.Offset()
	raw, err := w.c.ReadFull(HeaderSize, "chunk header")
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("end of input before IEND: %w", io.ErrUnexpectedEOF)
		}
		return nil, w.fail("header", off, err)
	}

	h := ParseHeader(raw)
	h.Offset = off
	name := types.ChunkType(h.Type).String()

	if w.cfg.Logger != nil {
		w.cfg.Logger.Debug("chunk",
			"offset", off, "type", name, "length", h.Length, "last", h.Terminal)
	}

	if h.Length > maxChunkLength {
		return nil, w.fail(name, off, types.Malformed(name, 0,
			"declared length %d exceeds 2^31-1", h.Length))
	}
	if w.cfg.MaxBlockSize > 0 && int64(h.Length) > w.cfg.MaxBlockSize {
		return nil, w.fail(name, off, types.Malformed(name, 0,
			"declared length %d exceeds limit %d", h.Length, w.cfg.MaxBlockSize))
	}

	payload, err := w.c.ReadFull(int(h.Length), name+" payload")
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, w.fail(name, off, err)
	}

	crc, err := w.c.ReadFull(CRCSize, name+" CRC")
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, w.fail(name, off, err)
	}
	h.CRC = uint32(binary.Uint(crc, CRCSize, binary.BigEndian))

	rec, err := DecodeChunk(h, payload)
	if err != nil {
		return nil, w.fail(name, off, err)
	}

	w.done = h.Terminal
	return rec, nil
}

func (w *Walker) fail(block string, off int64, err error) error {
	w.err = registry.BlockError(w.c, types.FormatPNG, block, off, err)
	return w.err
}

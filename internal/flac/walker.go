package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/registry"
	"github.com/simonhull/finfo/internal/types"
)

// Entry registers FLAC with a format sniffer.
func Entry() registry.Entry {
	return registry.Entry{
		Format:    types.FormatFLAC,
		Signature: Signature,
		NewWalker: NewWalker,
	}
}

// Walker yields FLAC metadata blocks until the block flagged last.
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

// Next decodes the next metadata block. It returns io.EOF once the last
// block has been returned.
func (w *Walker) Next() (types.Record, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.done {
		return nil, io.EOF
	}

	off := w.c.Offset()
	raw, err := w.c.ReadFull(HeaderSize, "metadata block header")
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("end of input before last metadata block: %w", io.ErrUnexpectedEOF)
		}
		return nil, w.fail("header", off, err)
	}

	h := ParseHeader(raw)
	h.Offset = off
	name := types.FLACBlockName(h.Type)

	if w.cfg.Logger != nil {
		w.cfg.Logger.Debug("metadata block",
			"offset", off, "type", name, "length", h.Length, "last", h.Terminal)
	}

	if w.cfg.MaxBlockSize > 0 && int64(h.Length) > w.cfg.MaxBlockSize {
		return nil, w.fail(name, off, types.Malformed(name, 0,
			"declared length %d exceeds limit %d", h.Length, w.cfg.MaxBlockSize))
	}

	var rec types.Record
	if h.Type == types.FLACPadding {
		if err := w.c.Discard(int64(h.Length), name); err != nil {
			return nil, w.fail(name, off, err)
		}
		rec = &types.Padding{BlockHeader: h, Size: h.Length}
	} else {
		payload, err := w.c.ReadFull(int(h.Length), name+" payload")
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, w.fail(name, off, err)
		}
		if rec, err = DecodeBlock(h, payload); err != nil {
			return nil, w.fail(name, off, err)
		}
	}

	w.done = h.Terminal
	return rec, nil
}

func (w *Walker) fail(block string, off int64, err error) error {
	w.err = registry.BlockError(w.c, types.FormatFLAC, block, off, err)
	return w.err
}

// Package registry identifies container formats by their leading signature
// and hands the stream to the matching chain walker.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/types"
)

// Walker yields the records of one block chain in stream order.
//
// Next returns io.EOF after the terminal record has been returned. Any
// other error is a *types.DecodeError and ends the walk.
type Walker interface {
	Next() (types.Record, error)
}

// Config carries per-decode settings into walkers.
type Config struct {
	// Logger receives a debug entry per block header. Must not be nil.
	Logger *slog.Logger

	// MaxBlockSize bounds a declared payload length before it is allocated.
	MaxBlockSize int64
}

// Entry registers one format: its signature and how to walk it. The
// signature has already been consumed when NewWalker is called.
type Entry struct {
	NewWalker func(c *binary.Cursor, cfg Config) Walker
	Signature []byte
	Format    types.Format
}

// Sniffer holds an ordered, immutable table of formats.
type Sniffer struct {
	entries []Entry
}

// New creates a Sniffer. Entries are tried in the given order; the table
// is copied so later changes to the arguments have no effect.
func New(entries ...Entry) *Sniffer {
	table := make([]Entry, len(entries))
	for i, e := range entries {
		e.Signature = bytes.Clone(e.Signature)
		table[i] = e
	}
	return &Sniffer{entries: table}
}

// Formats returns the registered formats in trial order.
func (s *Sniffer) Formats() []types.Format {
	out := make([]types.Format, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Format
	}
	return out
}

// Sniff compares each registered signature against the start of the stream
// and consumes the signature of the first match.
//
// Every candidate is compared against the stream start: Peek never
// advances the cursor, so a mismatch leaves it at offset 0 for the next
// candidate. If nothing matches, Sniff returns a
// *types.UnsupportedFormatError.
func (s *Sniffer) Sniff(c *binary.Cursor) (Entry, error) {
	if c.Offset() != 0 {
		return Entry{}, fmt.Errorf("%s: sniff requires a cursor at offset 0, got %d", c.Path(), c.Offset())
	}

	for _, e := range s.entries {
		if !matches(c, e.Signature) {
			continue
		}
		if err := c.Discard(int64(len(e.Signature)), e.Format.String()+" signature"); err != nil {
			return Entry{}, err
		}
		return e, nil
	}

	return Entry{}, &types.UnsupportedFormatError{
		Path:   c.Path(),
		Reason: fmt.Sprintf("no signature matched (tried %v)", s.Formats()),
		Tried:  s.Formats(),
	}
}

// matches reports whether the stream starts with sig. A stream shorter
// than sig is a mismatch, not an error.
func matches(c *binary.Cursor, sig []byte) bool {
	head, _ := c.Peek(len(sig))
	return bytes.Equal(head, sig)
}

// Walk sniffs the format and returns the walker for the rest of the stream.
func (s *Sniffer) Walk(c *binary.Cursor, cfg Config) (types.Format, Walker, error) {
	e, err := s.Sniff(c)
	if err != nil {
		return types.FormatUnknown, nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	cfg.Logger.Debug("format recognized", "format", e.Format, "path", c.Path())
	return e.Format, e.NewWalker(c, cfg), nil
}

// BlockError wraps a failure while decoding the block at header offset
// off into a *types.DecodeError. The kind comes from a *types.FieldError
// in err's chain; short reads are TruncatedStream and any other reader
// failure is ReadFailure.
func BlockError(c *binary.Cursor, f types.Format, block string, off int64, err error) *types.DecodeError {
	kind := types.KindReadFailure
	var fe *types.FieldError
	switch {
	case errors.As(err, &fe):
		kind = fe.Kind
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		kind = types.KindTruncatedStream
	}
	return &types.DecodeError{
		Err:    err,
		Path:   c.Path(),
		Format: f,
		Block:  block,
		Offset: off,
		Kind:   kind,
	}
}

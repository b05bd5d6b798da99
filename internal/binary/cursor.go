package binary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
)

// defaultBufferSize covers the longest registered signature many times
// over, so peeking never forces a second read.
const defaultBufferSize = 64 * 1024

// Cursor is a forward-only view over the undecoded bytes of a stream.
//
// Reads advance the cursor monotonically. Peek inspects upcoming bytes
// without advancing, which lets the format sniffer examine the stream start
// once per candidate on a source that cannot seek.
type Cursor struct {
	r      *bufio.Reader
	path   string
	offset int64
}

// NewCursor creates a Cursor reading from r. path is used in error messages.
func NewCursor(r io.Reader, path string) *Cursor {
	return &Cursor{
		r:    bufio.NewReaderSize(r, defaultBufferSize),
		path: path,
	}
}

// Path returns the file path associated with this cursor.
func (c *Cursor) Path() string {
	return c.path
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Peek returns up to n upcoming bytes without advancing. The slice is only
// valid until the next read. A short result is returned with the
// underlying error.
func (c *Cursor) Peek(n int) ([]byte, error) {
	return c.r.Peek(n)
}

// readStep bounds how far the buffer grows ahead of the bytes actually
// received, so a corrupt length cannot force a huge allocation.
const readStep = 64 * 1024

// ReadFull reads exactly n bytes into a new slice and advances.
//
// A short read wraps io.ErrUnexpectedEOF; reading at end of input
// returns io.EOF unwrapped so callers can tell a clean boundary apart.
// Any other read error is wrapped unchanged.
func (c *Cursor) ReadFull(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative read length %d for %s", c.path, n, what)
	}
	start := c.offset
	buf := make([]byte, 0, min(n, readStep))
	for len(buf) < n {
		have := len(buf)
		step := min(n-have, readStep)
		buf = slices.Grow(buf, step)[:have+step]

		got, err := io.ReadFull(c.r, buf[have:])
		c.offset += int64(got)
		buf = buf[:have+got]
		if err == nil {
			continue
		}

		switch {
		case errors.Is(err, io.EOF) && len(buf) == 0:
			return nil, io.EOF
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d: %w",
				c.path, what, start, len(buf), n, io.ErrUnexpectedEOF)
		default:
			return nil, fmt.Errorf("%s: read %s at offset %d: %w", c.path, what, c.offset, err)
		}
	}
	return buf, nil
}

// Discard skips n bytes without allocating and advances.
func (c *Cursor) Discard(n int64, what string) error {
	start := c.offset
	got, err := io.CopyN(io.Discard, c.r, n)
	c.offset += got
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("%s: short skip for %s at offset %d: got %d bytes, expected %d: %w",
			c.path, what, start, got, n, err)
	}
	return nil
}

// AtEOF reports whether no bytes remain.
func (c *Cursor) AtEOF() bool {
	_, err := c.r.Peek(1)
	return err != nil
}

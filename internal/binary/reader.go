// Package binary provides bounds-checked binary reading primitives: bit and
// integer extraction, a forward-only stream cursor and a payload reader.
package binary

import (
	"github.com/simonhull/finfo/internal/types"
)

// Reader reads fields sequentially from one block payload.
//
// Every read is checked against the payload bounds; reading past the end
// returns a *types.FieldError of kind MalformedField instead of panicking.
// Byte slices and strings returned by Reader never alias the payload.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader creates a Reader over payload.
func NewReader(payload []byte) *Reader {
	return &Reader{buf: payload}
}

// Offset returns the current offset within the payload.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread payload bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// take returns the next n bytes without copying and advances.
func (r *Reader) take(n int, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, types.Malformed(what, int64(r.offset),
			"need %d bytes, %d remain in payload of %d", n, r.Remaining(), len(r.buf))
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// Uint reads an n-byte unsigned integer in byte order e and advances.
// See Uint for the truncation rule when n > 8.
func (r *Reader) Uint(n int, e Endianness, what string) (uint64, error) {
	b, err := r.take(n, what)
	if err != nil {
		return 0, err
	}
	return Uint(b, n, e), nil
}

// Bytes reads n bytes into a freshly allocated slice and advances.
func (r *Reader) Bytes(n int, what string) ([]byte, error) {
	b, err := r.take(n, what)
	if err != nil {
		return nil, err
	}
	return types.Clone(b), nil
}

// ReadString reads a string of the given length and advances.
func (r *Reader) ReadString(n int, what string) (string, error) {
	b, err := r.take(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int, what string) error {
	_, err := r.take(n, what)
	return err
}

// ExpectEnd reports an error if unread bytes remain.
func (r *Reader) ExpectEnd(what string) error {
	if n := r.Remaining(); n != 0 {
		return types.Malformed(what, int64(r.offset), "%d trailing bytes", n)
	}
	return nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// ReadValue reads a numeric value in byte order e and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, e Endianness, what string) (T, error) {
	n := sizeOf[T]()
	v, err := r.Uint(n, e, what)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// ReadBE reads a big-endian value.
//
// Example:
//
//	width, err := binary.ReadBE[uint32](r, "picture width")
func ReadBE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadValue[T](r, BigEndian, what)
}

// ReadLE reads a little-endian value.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](r, "vendor string length")
func ReadLE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadValue[T](r, LittleEndian, what)
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, e Endianness, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, e, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Uint reads an n-byte integer, accumulating any error.
func (cr *ChainReader) Uint(n int, e Endianness, what string) uint64 {
	if cr.err != nil {
		return 0
	}
	v, err := cr.Reader.Uint(n, e, what)
	if err != nil {
		cr.err = err
		return 0
	}
	return v
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(length, what)
	if err != nil {
		cr.err = err
		return ""
	}

	return val
}

// Bytes reads an owned byte slice, accumulating any error.
func (cr *ChainReader) Bytes(length int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	val, err := cr.Reader.Bytes(length, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return val
}

// Skip advances past n bytes, accumulating any error.
func (cr *ChainReader) Skip(n int, what string) {
	if cr.err != nil {
		return
	}
	cr.err = cr.Reader.Skip(n, what)
}

// Fail records err unless an earlier error is already recorded.
func (cr *ChainReader) Fail(err error) {
	if cr.err == nil {
		cr.err = err
	}
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

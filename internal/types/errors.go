package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	// KindSignatureMismatch means the leading bytes do not match a format
	// signature. The sniffer recovers from it by trying the next format.
	KindSignatureMismatch ErrorKind = iota + 1

	// KindTruncatedStream means fewer bytes were available than a header or
	// payload declared.
	KindTruncatedStream

	// KindMalformedField means a field, derived length or offset would read
	// outside the declared payload, or a fixed layout was violated.
	KindMalformedField

	// KindUnsupportedNesting means a sub-record count implies more bytes than
	// remain in the payload.
	KindUnsupportedNesting

	// KindReadFailure means the underlying reader failed for a reason other
	// than end of input, such as a disk or network error.
	KindReadFailure
)

// Sentinel errors matched by errors.Is against FieldError, DecodeError and
// UnsupportedFormatError.
var (
	ErrSignatureMismatch  = errors.New("signature mismatch")
	ErrTruncatedStream    = errors.New("truncated stream")
	ErrMalformedField     = errors.New("malformed field")
	ErrUnsupportedNesting = errors.New("unsupported nesting")
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	ErrReadFailure        = errors.New("read failure")
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindSignatureMismatch:
		return "signature mismatch"
	case KindTruncatedStream:
		return "truncated stream"
	case KindMalformedField:
		return "malformed field"
	case KindUnsupportedNesting:
		return "unsupported nesting"
	case KindReadFailure:
		return "read failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel returns the errors.Is target for the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindSignatureMismatch:
		return ErrSignatureMismatch
	case KindTruncatedStream:
		return ErrTruncatedStream
	case KindMalformedField:
		return ErrMalformedField
	case KindUnsupportedNesting:
		return ErrUnsupportedNesting
	case KindReadFailure:
		return ErrReadFailure
	default:
		return nil
	}
}

// FieldError is returned by payload readers and block decoders.
// Offset is relative to the start of the payload being decoded.
type FieldError struct {
	What   string
	Reason string
	Offset int64
	Kind   ErrorKind
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s at payload offset %d: %s", e.What, e.Kind, e.Offset, e.Reason)
}

// Is reports whether target is the sentinel for the error's kind.
func (e *FieldError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// Malformed builds a KindMalformedField error.
func Malformed(what string, off int64, format string, args ...any) *FieldError {
	return &FieldError{
		Kind:   KindMalformedField,
		What:   what,
		Offset: off,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Nesting builds a KindUnsupportedNesting error.
func Nesting(what string, off int64, format string, args ...any) *FieldError {
	return &FieldError{
		Kind:   KindUnsupportedNesting,
		What:   what,
		Offset: off,
		Reason: fmt.Sprintf(format, args...),
	}
}

// DecodeError is surfaced by chain walkers. Offset is the absolute stream
// offset of the failing block's header.
type DecodeError struct {
	Err    error
	Path   string
	Format Format
	Block  string
	Offset int64
	Kind   ErrorKind
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "<stream>"
	}
	return fmt.Sprintf("%s: %s %s block at offset %d: %s: %v",
		path, e.Format, e.Block, e.Offset, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for the error's kind.
func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// UnsupportedFormatError is returned when no registered signature matches.
type UnsupportedFormatError struct {
	Path   string
	Reason string
	Tried  []Format
}

func (e *UnsupportedFormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "<stream>"
	}
	return fmt.Sprintf("%s: unrecognized format: %s", path, e.Reason)
}

// Is matches ErrUnrecognizedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnrecognizedFormat
}

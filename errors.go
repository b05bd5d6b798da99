package finfo

import (
	"github.com/simonhull/finfo/internal/types"
)

// ErrorKind is an alias to types.ErrorKind.
type ErrorKind = types.ErrorKind

// Error kinds.
const (
	KindSignatureMismatch  = types.KindSignatureMismatch
	KindTruncatedStream    = types.KindTruncatedStream
	KindMalformedField     = types.KindMalformedField
	KindUnsupportedNesting = types.KindUnsupportedNesting
	KindReadFailure        = types.KindReadFailure
)

// Sentinels for errors.Is.
var (
	ErrSignatureMismatch  = types.ErrSignatureMismatch
	ErrTruncatedStream    = types.ErrTruncatedStream
	ErrMalformedField     = types.ErrMalformedField
	ErrUnsupportedNesting = types.ErrUnsupportedNesting
	ErrUnrecognizedFormat = types.ErrUnrecognizedFormat
	ErrReadFailure        = types.ErrReadFailure
)

// FieldError is an alias to types.FieldError.
// It reports a field that could not be read from a block payload.
type FieldError = types.FieldError

// DecodeError is an alias to types.DecodeError.
// Every failure inside a block chain is reported as a DecodeError.
type DecodeError = types.DecodeError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

package finfo

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{
		Path:   "song.flac",
		Format: FormatFLAC,
		Block:  "CUESHEET",
		Offset: 1234,
		Kind:   KindUnsupportedNesting,
		Err:    errors.New("99 tracks need at least 3564 bytes, 0 remain"),
	}

	msg := err.Error()
	for _, substr := range []string{"song.flac", "FLAC", "CUESHEET", "offset 1234", "unsupported nesting", "99 tracks"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}

func TestDecodeError_NoPath(t *testing.T) {
	err := &DecodeError{Format: FormatPNG, Block: "IHDR", Kind: KindMalformedField, Err: io.ErrUnexpectedEOF}
	if !strings.HasPrefix(err.Error(), "<stream>:") {
		t.Errorf("got %q", err.Error())
	}
}

func TestDecodeError_Is(t *testing.T) {
	inner := &FieldError{Kind: KindMalformedField, What: "width", Offset: 4, Reason: "need 4 bytes"}
	err := fmt.Errorf("decode: %w", &DecodeError{Kind: KindMalformedField, Err: inner})

	if !errors.Is(err, ErrMalformedField) {
		t.Error("should match ErrMalformedField")
	}
	if errors.Is(err, ErrTruncatedStream) {
		t.Error("should not match ErrTruncatedStream")
	}

	var fe *FieldError
	if !errors.As(err, &fe) || fe.What != "width" {
		t.Errorf("errors.As(*FieldError) = %v", fe)
	}
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Kind: KindMalformedField, What: "picture data", Offset: 42, Reason: "need 10 bytes, 3 remain"}

	msg := err.Error()
	for _, substr := range []string{"picture data", "malformed field", "offset 42", "need 10 bytes"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}

func TestErrorKind_Sentinel(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want error
	}{
		{KindSignatureMismatch, ErrSignatureMismatch},
		{KindTruncatedStream, ErrTruncatedStream},
		{KindMalformedField, ErrMalformedField},
		{KindUnsupportedNesting, ErrUnsupportedNesting},
		{KindReadFailure, ErrReadFailure},
		{ErrorKind(0), nil},
	}

	for _, tt := range tests {
		if got := tt.kind.Sentinel(); got != tt.want {
			t.Errorf("%v.Sentinel() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "track.mp3",
		Reason: "no signature matched",
	}

	msg := err.Error()
	if !strings.Contains(msg, "track.mp3") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "no signature matched") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Error("should match ErrUnrecognizedFormat")
	}
}

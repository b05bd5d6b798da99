package finfo

import (
	"io"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/flac"
	"github.com/simonhull/finfo/internal/png"
	"github.com/simonhull/finfo/internal/registry"
	"github.com/simonhull/finfo/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatFLAC    = types.FormatFLAC
	FormatPNG     = types.FormatPNG
)

// sniffer holds the supported formats in trial order.
var sniffer = registry.New(
	flac.Entry(),
	png.Entry(),
)

// Formats returns the supported formats in the order they are tried.
func Formats() []Format {
	return sniffer.Formats()
}

// DetectFormat identifies the format of r from its leading signature.
//
// It reads at most one buffer from r; the bytes read are not returned to r.
// An unrecognized signature returns an error matching
// ErrUnrecognizedFormat.
func DetectFormat(r io.Reader) (Format, error) {
	e, err := sniffer.Sniff(binary.NewCursor(r, ""))
	if err != nil {
		return FormatUnknown, err
	}
	return e.Format, nil
}

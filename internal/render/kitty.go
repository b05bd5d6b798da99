package render

import (
	"fmt"
	"io"

	"github.com/simonhull/finfo/internal/binary"
)

const (
	escapeStart = "\033_G"
	escapeEnd   = "\033\\"
)

// ChunkSize is the number of raw bytes sent per escape sequence. It
// encodes to exactly 4096 base64 symbols, the protocol's limit.
const ChunkSize = 3072

// Kitty writes a PNG image to w as kitty graphics escapes. When cols is
// positive the image is scaled to that many terminal columns.
//
// It returns the number of bytes written.
func Kitty(w io.Writer, png []byte, cols int) (int64, error) {
	sw := binary.NewSafeWriter(w)

	control := "a=T,f=100"
	if cols > 0 {
		control += fmt.Sprintf(",c=%d", cols)
	}

	for first := true; first || len(png) > 0; first = false {
		n := min(len(png), ChunkSize)
		chunk := png[:n]
		png = png[n:]

		more := 0
		if len(png) > 0 {
			more = 1
		}

		_ = sw.WriteString(escapeStart)
		if first {
			_ = sw.WriteString(control + ",")
		}
		_ = sw.WriteString(fmt.Sprintf("m=%d;", more))
		_ = sw.WriteString(Base64(chunk))
		_ = sw.WriteString(escapeEnd)
	}
	_ = sw.WriteString("\n")

	if err := sw.Err(); err != nil {
		return sw.Offset(), fmt.Errorf("write kitty image: %w", err)
	}
	return sw.Offset(), nil
}

//go:build unix

package render

import (
	"os"

	"golang.org/x/sys/unix"
)

// Columns returns the width of the terminal behind f, or 0 when f is not
// a terminal.
func Columns(f *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}

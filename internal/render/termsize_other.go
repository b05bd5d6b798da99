//go:build !unix

package render

import "os"

// Columns returns 0: terminal width detection is only implemented on
// unix systems.
func Columns(*os.File) int {
	return 0
}

package finfo

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"
)

// Summary describes the block structure of one file.
type Summary struct {
	// Counts maps record kinds ("STREAMINFO", "IDAT", ...) to the number
	// of blocks of that kind.
	Counts map[string]int

	Path   string
	Format Format

	// Last is the kind of the terminal block.
	Last string

	// Size is the file size in bytes, including data after the chain
	// such as FLAC audio frames.
	Size int64

	Blocks int

	// Duration is set for FLAC streams with a known sample rate.
	Duration time.Duration

	// Width and Height are set for PNG images.
	Width  uint32
	Height uint32
}

// Inspect decodes path and summarizes its blocks.
func Inspect(ctx context.Context, path string, opts ...Option) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	s := &Summary{Path: path, Size: stat.Size(), Counts: map[string]int{}}

	format, err := Decode(ctx, f, path, s.add, opts...)
	if err != nil {
		return nil, err
	}
	s.Format = format

	return s, nil
}

func (s *Summary) add(rec Record) error {
	s.Blocks++
	s.Counts[rec.Kind()]++

	if rec.Header().Terminal {
		s.Last = rec.Kind()
	}

	switch r := rec.(type) {
	case *StreamInfo:
		s.Duration = r.Duration()
	case *ImageHeader:
		s.Width, s.Height = r.Width, r.Height
	}
	return nil
}

// Kinds returns the record kinds present, sorted.
func (s *Summary) Kinds() []string {
	kinds := make([]string, 0, len(s.Counts))
	for k := range s.Counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// String returns a one-line description.
//
// Example output: "song.flac: FLAC, 5 blocks (PADDING=1 STREAMINFO=1 ...), 3m12s"
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s, %d blocks (", s.Path, s.Format, s.Blocks)
	for i, k := range s.Kinds() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", k, s.Counts[k])
	}
	b.WriteByte(')')

	switch {
	case s.Duration > 0:
		fmt.Fprintf(&b, ", %s", s.Duration.Round(time.Millisecond))
	case s.Width > 0:
		fmt.Fprintf(&b, ", %dx%d", s.Width, s.Height)
	}
	return b.String()
}

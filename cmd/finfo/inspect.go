package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/simonhull/finfo"
)

// runInspect prints the block chain of every file in paths. A failing
// file is reported and the remaining files are still processed.
func runInspect(ctx context.Context, paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := inspectFile(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			printError("%v\n", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func inspectFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	format, err := finfo.DetectFormat(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%s: rewind: %w", path, err)
	}

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}
	p := newPrinter(out, path, jsonOut)
	p.header(format)

	_, err = finfo.Decode(ctx, f, path, p.record, finfo.WithLogger(newLogger(os.Stderr)))
	p.flush()
	return err
}

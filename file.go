package finfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/finfo/internal/binary"
	"github.com/simonhull/finfo/internal/registry"
)

// Decode identifies the format of r and decodes its block chain, calling
// fn with each record in stream order.
//
// Decoding stops after the terminal block (the FLAC block flagged last, or
// PNG IEND); bytes after it are not read. If fn returns an error the walk
// stops and Decode returns that error. path is only used in error messages
// and may be empty.
//
// The context is checked before every block.
//
// Example:
//
//	f, _ := os.Open("cover.png")
//	defer f.Close()
//	format, err := finfo.Decode(ctx, f, "cover.png", func(rec finfo.Record) error {
//		fmt.Println(rec.Kind())
//		return nil
//	})
func Decode(ctx context.Context, r io.Reader, path string, fn func(Record) error, opts ...Option) (Format, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := ctx.Err(); err != nil {
		return FormatUnknown, err
	}

	c := binary.NewCursor(r, path)
	format, w, err := sniffer.Walk(c, registry.Config{
		Logger:       options.logger,
		MaxBlockSize: options.maxBlockSize,
	})
	if err != nil {
		return FormatUnknown, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return format, err
		}

		rec, err := w.Next()
		if errors.Is(err, io.EOF) {
			return format, nil
		}
		if err != nil {
			return format, err
		}

		if err := fn(rec); err != nil {
			return format, err
		}
	}
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(ctx context.Context, path string, fn func(Record) error, opts ...Option) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Decode(ctx, f, path, fn, opts...)
}

// InspectMany summarizes multiple files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines,
// each file by its own walker. Results are returned in the same order as
// the input paths. The options apply to every file. The first failure
// cancels the remaining work and is returned.
//
// Example:
//
//	summaries, err := finfo.InspectMany(ctx, paths, finfo.WithMaxBlockSize(1<<20))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range summaries {
//		fmt.Println(s)
//	}
func InspectMany(ctx context.Context, paths []string, opts ...Option) ([]*Summary, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Summary, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			s, err := Inspect(ctx, path, opts...)
			if err != nil {
				return err
			}

			results[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

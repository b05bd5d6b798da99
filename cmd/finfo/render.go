package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/finfo"
	"github.com/simonhull/finfo/internal/render"
)

var renderForce bool

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Display a PNG with the kitty graphics protocol",
		Long: `Render validates the chunk chain of a PNG file and sends the image to
the terminal as kitty graphics escapes, scaled to the terminal width.

Output is refused when stdout is not a terminal unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args)
		},
	}
	cmd.Flags().BoolVarP(&renderForce, "force", "f", false, "Write escapes even when stdout is not a terminal")
	return cmd
}

var errNotTerminal = errors.New("stdout is not a terminal (use --force to write anyway)")

func runRender(ctx context.Context, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var width, height uint32
	format, err := finfo.Decode(ctx, bytes.NewReader(data), path, func(rec finfo.Record) error {
		if ih, ok := rec.(*finfo.ImageHeader); ok {
			width, height = ih.Width, ih.Height
		}
		return nil
	}, finfo.WithLogger(newLogger(os.Stderr)))
	if err != nil {
		return err
	}
	if format != finfo.FormatPNG {
		return fmt.Errorf("%s: cannot render %s input, only PNG", path, format)
	}

	if !renderForce && !render.IsTerminal(os.Stdout) {
		return errNotTerminal
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "rendering %s (%dx%d)\n", path, width, height)
	}
	_, err = render.Kitty(os.Stdout, data, render.Columns(os.Stdout))
	return err
}

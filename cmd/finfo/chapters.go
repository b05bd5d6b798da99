package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/finfo"
)

func init() {
	rootCmd.AddCommand(newChaptersCmd())
}

func newChaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters FILE",
		Short: "List chapter markers of a FLAC file",
		Long: `Chapters prints the chapters of a FLAC file, taken from its CUESHEET
block or, without one, from CHAPTERnnn Vorbis comments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChapters(cmd.Context(), args)
		},
	}
}

func runChapters(ctx context.Context, args []string) error {
	chapters, err := finfo.Chapters(ctx, args[0], finfo.WithLogger(newLogger(os.Stderr)))
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(chapters)
	}
	if len(chapters) == 0 {
		printInfo("%s: no chapters\n", args[0])
		return nil
	}
	for _, ch := range chapters {
		printInfo("%s %s  %s - %s\n",
			kindStyle.Render(fmt.Sprintf("[%02d]", ch.Index)), ch.Title, ch.Start, ch.End)
	}
	return nil
}

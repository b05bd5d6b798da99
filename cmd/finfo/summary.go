package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/finfo"
)

func init() {
	rootCmd.AddCommand(newSummaryCmd())
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE...",
		Short: "Print block counts for each file",
		Long: `Summary decodes the files concurrently and prints one line per file
with the number of blocks of each kind.

Example:
  finfo summary *.flac
  finfo summary --json cover.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), args)
		},
	}
}

func runSummary(ctx context.Context, paths []string) error {
	summaries, err := finfo.InspectMany(ctx, paths, finfo.WithLogger(newLogger(os.Stderr)))
	if err != nil {
		return err
	}

	for _, s := range summaries {
		if jsonOut {
			if err := printJSON(s); err != nil {
				return err
			}
			continue
		}
		printInfo("%s\n", s)
	}
	return nil
}

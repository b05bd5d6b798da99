package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/simonhull/finfo"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "finfo FILE...",
	Short: "Inspect FLAC metadata blocks and PNG chunks",
	Long: `finfo identifies each input by its signature and prints every block
of its metadata chain: FLAC metadata blocks up to the block flagged last,
or PNG chunks up to IEND.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			disableStyles()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd.Context(), args)
	},
}

func init() {
	rootCmd.Version = finfo.GetVersionInfo().String()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every block header to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output one JSON object per line")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the logger handed to the decoder: debug with
// --verbose, errors only with --quiet, info otherwise.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, errorStyle.Render("Error:")+" "+format, args...)
}

// printJSON writes v as a single line of JSON.
func printJSON(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

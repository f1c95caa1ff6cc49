// Package cli implements the lvltrace command line: playing an algorithm
// trace through a playback.Runner, listing archived traces and listing the
// supported algorithms.
package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltrace/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvltrace CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvltrace",
		Short: "Step through algorithm traces",
		Long: `lvltrace runs an algorithm on an input document or a generated graph
and plays back its trace: one event per step, each carrying the full
algorithm state, followed by a one-line summary of the outcome.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log runner lifecycle to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewAlgorithmsCommand(opts))

	return cmd
}

// newLogger returns a debug-level text logger on w when verbose is set.
func (o *RootOptions) newLogger(w io.Writer) logging.Logger {
	if !o.Verbose {
		return logging.NoOpLogger{}
	}
	return logging.NewLogger(logging.LoggerConfig{
		Level:     logging.LevelDebug,
		Format:    "text",
		Output:    w,
		Component: "lvltrace",
	})
}


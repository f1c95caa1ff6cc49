package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltrace/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived traces",
		Long: `List the traces archived by 'lvltrace play --db', newest first.

Examples:
  lvltrace history --db traces.db
  lvltrace history --db traces.db --limit 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of traces to list (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	records, err := st.ListOperations(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list traces", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(records, func(w io.Writer) error {
		return writeHistoryText(w, records)
	})
}

func writeHistoryText(w io.Writer, records []store.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No archived traces.")
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s  %-16s %4d events  %s  [%s]\n",
			r.CreatedAt.Format(time.RFC3339), r.Kind, r.EventCount, r.Summary, r.ID); err != nil {
			return err
		}
	}
	return nil
}

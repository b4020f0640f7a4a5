package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int // 0 uses history.limit from the config
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent queries",
		Long: `Show the most recent queries from the interaction log, newest first.

Examples:
  masft history
  masft history --limit 25 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Limit < 0 {
				out := newFormatter(opts.RootOptions, cmd)
				out.Error(ErrCodeInvalidArgument, fmt.Sprintf("--limit must not be negative, got %d", opts.Limit), nil)
				return NewExitError(ExitCommandError, "invalid limit")
			}

			a, err := newApp(opts.RootOptions, cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.svc.History(cmd.Context(), opts.Limit)
			if err != nil {
				return reportError(a.out, err)
			}
			if a.out.Format == "json" {
				return a.out.Success(records)
			}
			return writeHistory(a.out.Writer, records)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "number of records to show (default from config)")

	return cmd
}

func writeHistory(w io.Writer, records []history.InteractionRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No queries recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tOUTCOME\tRESOLVED\tQUERY")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.RecordedAt.Local().Format(time.DateTime), r.Outcome, resolvedName(r), r.Query)
	}
	return tw.Flush()
}

func resolvedName(r history.InteractionRecord) string {
	if r.ResolvedName == nil {
		return "-"
	}
	return *r.ResolvedName
}

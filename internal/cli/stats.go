package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/educator"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		Long: `Show the most viewed failure modes, solution feedback ratings and
recent queries.

Examples:
  masft stats
  masft stats --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			st, err := a.svc.Stats(cmd.Context())
			if err != nil {
				return reportError(a.out, err)
			}
			if a.out.Format == "json" {
				return a.out.Success(st)
			}
			return writeStats(a.out.Writer, st)
		},
	}
}

func writeStats(w io.Writer, st educator.Stats) error {
	fmt.Fprintln(w, "Most viewed failure modes:")
	if len(st.MostViewed) == 0 {
		fmt.Fprintln(w, "  none")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, v := range st.MostViewed {
			fmt.Fprintf(tw, "  %s\t%d\n", v.FailureMode, v.Views)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Solution ratings:")
	if len(st.Feedback.ByType) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range st.Feedback.ByType {
		fmt.Fprintf(w, "  %s: %.2f (%d ratings)\n", r.SolutionType, r.Average, r.Ratings)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Feedback by failure mode:")
	if len(st.Feedback.ByFailureMode) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, m := range st.Feedback.ByFailureMode {
		fmt.Fprintf(w, "  %s: %d\n", m.FailureMode, m.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent queries:")
	return writeHistory(w, st.RecentQueries)
}

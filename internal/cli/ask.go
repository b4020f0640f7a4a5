package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/educator"
	"github.com/roach88/masft/internal/resolve"
)

// AskOptions holds flags for the ask command.
type AskOptions struct {
	*RootOptions
	Explain bool // print the score breakdown instead of the answer
}

// ExplainResult is the JSON shape of ask --explain.
type ExplainResult struct {
	Query    string          `json:"query"`
	MinScore int             `json:"min_score"`
	Scores   []resolve.Score `json:"scores"`
}

// NewAskCommand creates the ask command.
func NewAskCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AskOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Ask about a failure mode or category",
		Long: `Ask a free-text question about the failure taxonomy.

The query is matched against every failure mode and category. A single
best match prints its full explanation, a tie lists the candidates and
no match prints usage hints. Every query is recorded in the interaction
log; if the log cannot be written the answer is still printed with a
warning.

Examples:
  masft ask "information withholding"
  masft ask what causes agent goals to conflict
  masft ask decision --explain
  masft ask "communication failures" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "show how every entry scored against the query")

	return cmd
}

func runAsk(opts *AskOptions, query string, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd, !opts.Explain)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Explain {
		return outputExplain(a, query)
	}

	return emitAnswer(a, a.svc.Ask(cmd.Context(), query))
}

func outputExplain(a *app, query string) error {
	result := ExplainResult{
		Query:    query,
		MinScore: a.cfg.Resolver.MinScore,
		Scores:   a.svc.Explain(query),
	}
	if a.out.Format == "json" {
		return a.out.Success(result)
	}

	w := a.out.Writer
	if len(result.Scores) == 0 {
		fmt.Fprintf(w, "No entry scored for %q.\n", query)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tKIND\tNAME\tMATCHED")
	for _, s := range result.Scores {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Total, s.Kind, s.Name, strings.Join(s.Matched, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("minimum score: %d", result.MinScore)))
	return nil
}

// emitAnswer prints an answer and any log warning.
func emitAnswer(a *app, ans educator.Answer) error {
	a.warnIf(ans.Warning)
	if a.out.Format == "json" {
		return a.out.Success(ans)
	}
	return a.out.Success(a.render(ans.Payload))
}

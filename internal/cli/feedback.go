package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/educator"
	"github.com/roach88/masft/internal/history"
)

// FeedbackOptions holds flags for the feedback command.
type FeedbackOptions struct {
	*RootOptions
	Type    string // tactical | structural
	Index   int    // 1-based solution number as printed by show
	Rating  int    // 1-5, 0 for none
	Comment string
}

// NewFeedbackCommand creates the feedback command.
func NewFeedbackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeedbackOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "feedback <failure-mode...>",
		Short: "Rate a suggested solution",
		Long: `Rate one of the tactical or structural solutions of a failure mode.
Solutions are numbered from 1 in the order "masft show" lists them.

Examples:
  masft feedback Information Withholding --type tactical --index 2 --rating 4
  masft feedback Miscommunication --type structural --index 1 --comment "worked for us"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeedback(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", string(history.SolutionTactical), "solution type (tactical|structural)")
	cmd.Flags().IntVar(&opts.Index, "index", 1, "solution number, starting at 1")
	cmd.Flags().IntVar(&opts.Rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "free-text comment")

	return cmd
}

func runFeedback(opts *FeedbackOptions, mode string, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	fb, err := a.svc.SubmitFeedback(cmd.Context(), educator.FeedbackRequest{
		FailureMode:  mode,
		SolutionType: history.SolutionType(strings.ToLower(opts.Type)),
		Index:        opts.Index,
		Rating:       opts.Rating,
		Comment:      opts.Comment,
	})
	if err != nil {
		return reportError(a.out, err)
	}

	if a.out.Format == "json" {
		return a.out.Success(fb)
	}
	fmt.Fprintf(a.out.Writer, "%s Feedback recorded for %s (%s): %s\n",
		passStyle.Render("✓"), fb.FailureMode, fb.SolutionType, fb.Solution)
	return nil
}

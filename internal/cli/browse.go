package cli

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [name...]",
		Short: "List categories or explain one",
		Long: `Without arguments, list every failure category with its explanation.
With a category name, explain that category and list its failure modes.

Examples:
  masft categories
  masft categories Alignment Failures`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 0 {
				return a.emit(a.svc.ListCategories())
			}
			p, err := a.svc.ShowCategory(strings.Join(args, " "))
			if err != nil {
				return reportError(a.out, err)
			}
			return a.emit(p)
		},
	}
}

// ModesOptions holds flags for the modes command.
type ModesOptions struct {
	*RootOptions
	Category string // restrict the list to one category
}

// NewModesCommand creates the modes command.
func NewModesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ModesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List failure modes grouped by category",
		Long: `List every failure mode with its short description, grouped by category.

Examples:
  masft modes
  masft modes --category "Communication Failures"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.RootOptions, cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.svc.ListFailureModes(opts.Category)
			if err != nil {
				return reportError(a.out, err)
			}
			return a.emit(p)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "only list failure modes in this category")

	return cmd
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <failure-mode...>",
		Short: "Show a failure mode in full",
		Long: `Show the definition, example scenarios, analysis and solutions of a
failure mode. The name must match exactly, ignoring case. Each view is
counted in the usage statistics.

Examples:
  masft show Information Withholding
  masft show "decision paralysis" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			ans, err := a.svc.ShowFailureMode(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return reportError(a.out, err)
			}
			return emitAnswer(a, ans)
		},
	}
}

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Seed int64 // 0 picks a time-based seed
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo <failure-mode...>",
		Short: "Demonstrate a failure mode with one example scenario",
		Long: `Pick one example scenario of a failure mode at random.

Examples:
  masft demo Miscommunication
  masft demo Decision Paralysis --seed 7`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.RootOptions, cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			seed := uint64(opts.Seed)
			if opts.Seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(seed, seed>>1))

			p, err := a.svc.Demonstrate(strings.Join(args, " "), rng)
			if err != nil {
				return reportError(a.out, err)
			}
			return a.emit(p)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")

	return cmd
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/catalog"
)

// ValidateResult is the JSON shape of a successful validation.
type ValidateResult struct {
	Path         string `json:"path"`
	FailureModes int    `json:"failure_modes"`
	Categories   int    `json:"categories"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.json>",
		Short: "Validate a catalog source file",
		Long: `Validate a failure-mode catalog file without running anything.

The file must be a JSON object keyed by failure mode name. Every entry
needs a category, description, short description, analysis, example
scenarios and tactical and structural solutions.

Exit codes:
  0 - Catalog is valid
  1 - Catalog is invalid or unreadable

Examples:
  masft validate ./data/failure_modes.json
  masft validate ./custom.json --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	cat, err := catalog.LoadFile(path)
	if err != nil {
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			out.Error(loadErr.Code, loadErr.Error(), loadErrorDetails(loadErr))
		} else {
			out.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	result := ValidateResult{
		Path:         path,
		FailureModes: len(cat.FailureModes()),
		Categories:   len(cat.Categories()),
	}
	if opts.Format == "json" {
		return out.Success(result)
	}
	fmt.Fprintf(out.Writer, "%s Catalog valid: %d failure modes in %d categories\n",
		passStyle.Render("✓"), result.FailureModes, result.Categories)
	return nil
}

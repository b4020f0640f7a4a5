package cli

import (
	"errors"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/educator"
	"github.com/roach88/masft/internal/history"
)

// Error codes for CLI output. Catalog load failures use their own E2xx codes.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeNotFound        = "E005" // Path not found
	ErrCodeConfig          = "E008" // Configuration could not be loaded
	ErrCodeUnknownEntity   = "E009" // Failure mode or category not in the catalog
	ErrCodeInvalidFeedback = "E010" // Feedback rejected
	ErrCodeLogUnavailable  = "E011" // Interaction log unavailable
	ErrCodeInvalidArgument = "E012" // Invalid flag or argument
	ErrCodeScenarioFailed  = "E013" // One or more scenarios failed
)

// reportError prints err in the configured format and returns the ExitError
// the command should exit with. An *ExitError is assumed to be reported
// already and is returned unchanged.
func reportError(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var (
		loadErr *catalog.LoadError
		nfErr   *educator.NotFoundError
	)
	switch {
	case errors.As(err, &loadErr):
		f.Error(loadErr.Code, loadErr.Error(), loadErrorDetails(loadErr))
		return WrapExitError(ExitCommandError, "catalog could not be loaded", err)
	case errors.As(err, &nfErr):
		f.Error(ErrCodeUnknownEntity, nfErr.Error(), nil)
		return WrapExitError(ExitFailure, "lookup failed", err)
	case errors.Is(err, history.ErrInvalidFeedback):
		f.Error(ErrCodeInvalidFeedback, err.Error(), nil)
		return WrapExitError(ExitFailure, "feedback rejected", err)
	case history.IsUnavailable(err):
		f.Error(ErrCodeLogUnavailable, err.Error(), nil)
		return WrapExitError(ExitFailure, "interaction log unavailable", err)
	default:
		f.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "command failed", err)
	}
}

func loadErrorDetails(e *catalog.LoadError) map[string]any {
	details := map[string]any{}
	if e.FailureMode != "" {
		details["failure_mode"] = e.FailureMode
	}
	if e.Field != "" {
		details["field"] = e.Field
	}
	if e.Line > 0 {
		details["line"] = e.Line
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

package catalog

import (
	"errors"
	"fmt"
)

// Load error codes (E200-E299).
const (
	ErrCodeSyntax          = "E201" // source is not valid JSON/YAML
	ErrCodeEmpty           = "E202" // no failure modes in source
	ErrCodeShape           = "E203" // top level is not an object keyed by name
	ErrCodeDuplicate       = "E204" // duplicate failure mode name
	ErrCodeSchema          = "E205" // missing field, wrong type or empty value
	ErrCodeUnknownCategory = "E206" // category description references no failure mode
	ErrCodeRead            = "E207" // source file could not be read
)

// LoadError reports malformed catalog source data.
// It is fatal: the application cannot run without its taxonomy.
type LoadError struct {
	Code        string
	FailureMode string // empty when the error is not specific to one entry
	Field       string // empty when the error is not specific to one field
	Line        int    // 1-based source line, 0 if unknown
	Message     string
	Err         error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.FailureMode != "" {
		msg = fmt.Sprintf("%q: %s", e.FailureMode, msg)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return fmt.Sprintf("catalog load failed [%s]: %s", e.Code, msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

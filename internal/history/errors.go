package history

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches every *UnavailableError under errors.Is.
var ErrUnavailable = errors.New("interaction log unavailable")

// ErrInvalidFeedback is returned for feedback that can never be stored.
var ErrInvalidFeedback = errors.New("invalid feedback")

// UnavailableError reports that the log could not be read or written.
type UnavailableError struct {
	Op  string // operation that failed: open, record, history, ...
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrUnavailable, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUnavailable, e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// IsUnavailable reports whether err is or wraps an *UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

func unavailable(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}

package educator

import (
	"errors"
	"fmt"
)

// NotFoundError reports a name that is not in the catalog.
type NotFoundError struct {
	Kind string // "failure mode" or "category"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

package exception

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for callers that need to branch on
// the failure reason rather than on the message.
type Kind string

const (
	KindConfiguration   Kind = "configuration"
	KindValidation      Kind = "validation"
	KindTransport       Kind = "transport"
	KindEmpty           Kind = "empty"
	KindUnsupportedCity Kind = "unsupported_city"
	KindSuperseded      Kind = "superseded"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on kind and message, so a sentinel still matches after a cause
// has been attached with WithCause.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Kind == targetErr.Kind &&
		e.Message == targetErr.Message
}

// WithCause returns a copy of the error wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// KindOf returns the kind of the first ApplicationError in err's chain, or an
// empty kind when there is none.
func KindOf(err error) Kind {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return ""
}

package content

import "errors"

var ErrInvalidContent = errors.New("invalid content")

// ValidationError describes why a descriptor was rejected.
// Reason is meant to be shown to the end user as is.
type ValidationError struct {
	Type   Type
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidContent
}

func invalid(t Type, field, reason string) *ValidationError {
	return &ValidationError{Type: t, Field: field, Reason: reason}
}

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrClientNotFound   = errors.New("client not found")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidProfile   = errors.New("invalid client profile")
)

// ValidationError reports which field rejected a client or renewal change.
// It matches ErrValidation and unwraps to the specific cause.
type ValidationError struct {
	Field string
	Err   error
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

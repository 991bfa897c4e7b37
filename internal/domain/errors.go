package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network error")
	ErrServer       = errors.New("server error")

	// ErrPageOutOfRange is returned for page requests outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrSuperseded marks a response that arrived after a newer request was issued.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// Message carries a server-supplied summary when the error came from the API.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Errors) == 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	case len(e.Errors) > 1:
		return fmt.Sprintf("validation: %d errors", len(e.Errors))
	case e.Message != "":
		return "validation: " + e.Message
	}
	return "validation: invalid input"
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

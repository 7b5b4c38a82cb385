package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity fails validation.
	// It is normally wrapped by a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNotFound is returned when an entity exists neither in the overlay
	// nor in the upstream data set.
	ErrNotFound = errors.New("entity not found")

	// ErrUpstreamUnavailable is returned when the upstream data source could
	// not be reached, timed out, answered with a non-success status, or sent
	// a body that could not be decoded.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrForbidden is returned when an authenticated principal lacks the
	// role an operation requires.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error returns the human readable message, e.g. "Title is required".
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s is invalid", e.Field)
	}
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

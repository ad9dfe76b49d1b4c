package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// ConflictError identifies the field whose uniqueness rule was violated.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s %q already exists", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// EnvironmentUsage reports how many artifacts block disabling an environment.
type EnvironmentUsage struct {
	Environment   Environment `json:"environment"`
	ArtifactCount int         `json:"artifactCount"`
}

// EnvironmentInUseError is returned when disabling an environment that still
// has artifacts, or when the resulting enabled set would be empty.
type EnvironmentInUseError struct {
	Blocking []EnvironmentUsage
}

func (e *EnvironmentInUseError) Error() string {
	return fmt.Sprintf("conflict: %d environment(s) still in use", len(e.Blocking))
}

func (e *EnvironmentInUseError) Unwrap() error { return ErrConflict }

// RateLimitedError carries the retry-after hint for a rejected consume.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error { return ErrRateLimited }

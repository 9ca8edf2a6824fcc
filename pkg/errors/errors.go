package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common seeding outcomes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidDefinition  = errors.New("invalid seed definition")
	ErrMissingReference   = errors.New("referenced entity missing")
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
	ErrInternal           = errors.New("internal error")
)

// SeedError represents a structured seeding error with a stable code.
type SeedError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *SeedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// NotFound creates an error for a missing row.
func NotFound(resource, key string) *SeedError {
	return &SeedError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with key %s not found", resource, key),
		Err:     ErrNotFound,
	}
}

// AlreadyExists creates an error for a natural-key collision.
func AlreadyExists(resource, field, value string) *SeedError {
	return &SeedError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s with %s %q already exists", resource, field, value),
		Err:     ErrAlreadyExists,
	}
}

// InvalidDefinition creates an error for a seed definition that fails validation.
func InvalidDefinition(message string) *SeedError {
	return &SeedError{
		Code:    "INVALID_DEFINITION",
		Message: message,
		Err:     ErrInvalidDefinition,
	}
}

// MissingReference creates an error for a dependent step whose prerequisite
// entity does not exist. Callers are expected to skip the step and warn,
// not abort the run.
func MissingReference(kind, key string) *SeedError {
	return &SeedError{
		Code:    "MISSING_REFERENCE",
		Message: fmt.Sprintf("%s %q does not exist", kind, key),
		Err:     ErrMissingReference,
	}
}

// CodeSpaceExhausted creates an error for code generation that could not
// find an unused candidate within the retry budget.
func CodeSpaceExhausted(attempts int) *SeedError {
	return &SeedError{
		Code:    "CODE_SPACE_EXHAUSTED",
		Message: fmt.Sprintf("no unused code found after %d attempts", attempts),
		Err:     ErrCodeSpaceExhausted,
	}
}

// Internal creates an error for an unrecoverable failure.
func Internal(err error) *SeedError {
	return &SeedError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// IsSkippable reports whether the error should be logged as a warning and
// skipped rather than aborting the seeding run.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrMissingReference)
}

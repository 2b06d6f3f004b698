// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.

var (
	// ErrNotFound is returned when a requested joke does not exist,
	// or when a random pick lands on nothing.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage is returned when the persistence layer fails.
	ErrStorage = errors.New("storage failure")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Cause is the infrastructure error behind a storage failure, if any.
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	var s string
	switch {
	case e.Field != "":
		s = fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	case e.Message != "":
		s = fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	default:
		s = e.Base.Error()
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap exposes both the base sentinel and the cause to errors.Is/As.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Cause}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewStorageError records which storage operation failed and why.
func NewStorageError(op string, cause error) *DomainError {
	return &DomainError{
		Base:    ErrStorage,
		Message: op,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStorageError checks if an error is a storage error.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation  = errors.New("validation error")
	ErrEmptyValue  = errors.New("value cannot be empty")
	ErrInvalidChar = errors.New("unrecognized character")

	// Capacity errors
	ErrCapacity = errors.New("capacity exceeded")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "course"
	Op      string // Operation that failed, e.g., "ValidateName", "Lookup"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student validation errors. Validation happens before any field is mutated,
// so a failed setter leaves the record exactly as it was.
var (
	ErrEmptyRoll         = NewDomainError("student", "ValidateRoll", ErrEmptyValue, "roll number cannot be empty")
	ErrInvalidRollChar   = NewDomainError("student", "ValidateRoll", ErrInvalidChar, "unrecognized character in roll number")
	ErrEmptyName         = NewDomainError("student", "ValidateName", ErrEmptyValue, "name cannot be empty")
	ErrNoSecondName      = NewDomainError("student", "ValidateName", ErrValidation, "no second name provided")
	ErrInvalidNameChar   = NewDomainError("student", "ValidateName", ErrInvalidChar, "name contains characters other than letters, spaces, or hyphens")
	ErrInvalidSecondName = NewDomainError("student", "ValidateName", ErrValidation, "second name contains digits or special characters")
	ErrOverflow          = NewDomainError("student", "Copy", ErrCapacity, "value exceeds field capacity")
	ErrInvalidLevel      = NewDomainError("student", "Validate", ErrValidation, "invalid academic level")
	ErrInvalidBranch     = NewDomainError("student", "Validate", ErrValidation, "invalid branch")
)

// Course errors
var (
	ErrRollNotFound = NewDomainError("course", "Lookup", ErrNotFound, "roll number not found")
	ErrNilStudent   = NewDomainError("course", "Add", ErrInvalidEntity, "cannot add nil student")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrInvalidChar)
}

// IsCapacity checks if the error is a capacity contract violation.
func IsCapacity(err error) bool {
	return errors.Is(err, ErrCapacity)
}

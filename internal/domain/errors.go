package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrUnexpected  = errors.New("unexpected error")
)

// conflictMessage is the user-facing text for every optimistic concurrency
// failure. Callers are expected to re-fetch and retry.
const conflictMessage = "has been modified or deleted by another user. Please refresh and try again"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError with a single field failure.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports that a conditional write lost the race against
// another writer. It always unwraps to ErrConflict.
type ConflictError struct {
	Kind string
	ID   string
}

func (e *ConflictError) Error() string {
	if e.Kind == "" {
		return "the record " + conflictMessage
	}
	return fmt.Sprintf("the %s %s %s", e.Kind, e.ID, conflictMessage)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnexpectedError is the opaque failure surfaced to callers when a
// collaborator fails in a way not covered by the other kinds. The underlying
// cause is logged against CorrelationID and never exposed.
type UnexpectedError struct {
	CorrelationID string
}

func (e *UnexpectedError) Error() string {
	if e.CorrelationID == "" {
		return ErrUnexpected.Error()
	}
	return fmt.Sprintf("%s (correlation id %s)", ErrUnexpected.Error(), e.CorrelationID)
}

func (e *UnexpectedError) Unwrap() error {
	return ErrUnexpected
}

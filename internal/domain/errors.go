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
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidDefinition marks a calculated field, workflow step or form
	// declaration rejected at registration time.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrNotIntrospectable marks a record type the field introspector cannot
	// turn into field definitions.
	ErrNotIntrospectable = errors.New("not an introspectable type")
)

// MsgRequired is the validation message for mandatory attributes.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Kind optionally narrows the failure to a more specific sentinel such as
// ErrInvalidDefinition; errors.Is matches both ErrValidation and Kind.
type ValidationError struct {
	Fields map[string]string
	Kind   error
}

// NewDefinitionError returns a *ValidationError of kind ErrInvalidDefinition.
func NewDefinitionError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields, Kind: ErrInvalidDefinition}
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

	prefix := ErrValidation.Error()
	if e.Kind != nil {
		prefix = e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", prefix, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Kind != nil {
		return []error{ErrValidation, e.Kind}
	}
	return []error{ErrValidation}
}

// Package apperrors defines the error taxonomy surfaced by the API:
// a store-unavailable sentinel and field-level validation failures.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable is returned when the document store is not configured
// or not reachable. Handlers surface it as a server error without retrying.
var ErrStoreUnavailable = errors.New("database not configured")

// FieldError describes a single constraint violation on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated constraint for one request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError wraps the given field errors; nil when there are none.
func NewValidationError(fields []FieldError) *ValidationError {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

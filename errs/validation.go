package errs

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationErr carries field-level validation failures. Fields maps a field
// name to one or more human-readable messages.
type ValidationErr struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationErr {
	return &ValidationErr{Fields: make(map[string][]string)}
}

// AddFieldError appends a message for the given field.
func (e *ValidationErr) AddFieldError(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed validation.
func (e *ValidationErr) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationErr) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(fields, ", "))
}

func (e *ValidationErr) Unwrap() error {
	return ErrValidation
}

// StatusCode keeps ValidationErr compatible with handlers that branch on the
// HTTP status of an error.
func (e *ValidationErr) StatusCode() int {
	return http.StatusBadRequest
}

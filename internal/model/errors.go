package model

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound signals a well-formed but absent key or lead ID.
var ErrNotFound = errors.New("not found")

// FieldErrors aggregates per-field validation messages. Validation never
// stops at the first bad field; every violation is reported together.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MissingFieldsError lists required lead fields that were empty after
// trimming.
type MissingFieldsError []string

func (e MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e, ", ")
}

package store

import (
	"errors"
	"fmt"
)

// ErrWhereRequired rejects bulk UPDATE/DELETE with no filter.
var ErrWhereRequired = errors.New("WHERE clause required")

// MissingFieldError is a validation failure: a required field is absent
// from the command. The orchestrator answers it by asking the user for the
// missing value and holding the message as a pending operation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// NotFoundError is a lookup failure for a referenced entity. The pipeline
// never fabricates a replacement.
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Name)
}

type UnknownTableError struct {
	Table string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q (known: %s)", e.Table, tableList())
}

type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q on table %q", e.Column, e.Table)
}

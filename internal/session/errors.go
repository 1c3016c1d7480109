package session

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a session error.
type ErrorKind int

const (
	// ErrKindUnknownField means SetField named a field the draft does not have
	ErrKindUnknownField ErrorKind = iota
	// ErrKindNotOpen means an edit or commit was attempted on a closed session
	ErrKindNotOpen
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindUnknownField:
		return "Unknown Field"
	case ErrKindNotOpen:
		return "Session Not Open"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is returned for misuse of a Controller. Edits themselves never fail.
type Error struct {
	Kind   ErrorKind
	Entity string // entity kind, e.g. "vehicle"
	Field  string // offending field name, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s session has no field %q", e.Kind, e.Entity, e.Field)
	}
	return fmt.Sprintf("%s: %s session is closed", e.Kind, e.Entity)
}

// IsUnknownField reports whether err is an ErrKindUnknownField error
func IsUnknownField(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindUnknownField
}

// IsNotOpen reports whether err is an ErrKindNotOpen error
func IsNotOpen(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindNotOpen
}

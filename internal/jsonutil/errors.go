package jsonutil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a programming error in the caller: a nil
	// object or an empty field name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingValue reports a mandatory field that is absent, null or not
	// a primitive.
	ErrMissingValue = errors.New("missing mandatory value")
	// ErrParse reports a primitive that could not be coerced to the
	// requested type.
	ErrParse = errors.New("parse failure")
)

// ParseError describes a failed coercion of one field.
type ParseError struct {
	Field string
	Kind  string // target type, e.g. "int32", "datetime"
	Value string // textual form of the offending primitive
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parsing %q as %s: %v", e.Value, e.Kind, e.Err)
	}
	return fmt.Sprintf("field %q: parsing %q as %s: %v", e.Field, e.Value, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrParse so callers need not know about the struct.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func missingValue(field string) error {
	return fmt.Errorf("%w: mandatory value %q is absent", ErrMissingValue, field)
}

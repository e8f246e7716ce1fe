package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *Error.
	ErrValidation = errors.New("validation failed")
	// ErrUndeclared matches every *UndeclaredError.
	ErrUndeclared = errors.New("undeclared parameter")
	// ErrMissing matches every *MissingError.
	ErrMissing = errors.New("missing argument")
	// ErrInvalidSchema is returned by New for unusable schemas.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ReturnParam is the Param of an *Error raised for a result.
const ReturnParam = "return"

// Error reports a value whose runtime type does not match its declaration.
type Error struct {
	Param    string
	Value    any
	Expected Type
}

func (e *Error) Error() string {
	subject := fmt.Sprintf("argument %q", e.Param)
	if e.Param == ReturnParam {
		subject = "return value"
	}
	return fmt.Sprintf("%v: %s: %#v is not of type %s", ErrValidation, subject, e.Value, e.Expected.Name())
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// UndeclaredError reports an argument the schema has no type for.
// It is a configuration problem with the schema, not a validation failure.
type UndeclaredError struct {
	Param string
}

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUndeclared, e.Param)
}

func (e *UndeclaredError) Is(target error) bool {
	return target == ErrUndeclared
}

// MissingError reports a declared parameter the call did not supply,
// either positionally or by name.
type MissingError struct {
	Param string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissing, e.Param)
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

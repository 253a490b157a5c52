package domain

import (
	"errors"
	"fmt"
)

// The error types below carry the exact client-facing vocabulary. Handlers
// translate them to HTTP statuses in a fixed precedence order; see
// internal/http/handlers/errors.go.

// ShapeError reports a payload with missing required or unknown fields.
type ShapeError struct {
	Field string
	Err   error
}

func (e ShapeError) Error() string { return "Bad request." }

func (e ShapeError) Unwrap() error { return e.Err }

// TypeError reports a field holding the wrong primitive type, including
// non-integer :id path params and non-numeric query values.
type TypeError struct {
	Field string
	Err   error
}

func (e TypeError) Error() string { return "Invalid input type." }

func (e TypeError) Unwrap() error { return e.Err }

// EnumError reports a sort/order value outside the allow-list.
type EnumError struct {
	Param string
	Value string
}

func (e EnumError) Error() string { return "Oops! Invalid either sort or order." }

// DateFormatError reports a date field that does not parse as a calendar date.
type DateFormatError struct {
	Field string
	Value string
}

func (e DateFormatError) Error() string { return "Invalid date format." }

// NotFoundError is raised by resource operations after inspecting row counts.
// Msg is resource-specific ("property doesn't exist, no record deleted.").
type NotFoundError struct {
	Msg string
	Err error
}

func (e NotFoundError) Error() string {
	if e.Msg == "" {
		return "No record found."
	}
	return e.Msg
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ForeignKeyError reports a referential violation surfaced by the storage
// layer (dangling guest/host/property reference, or delete of a referenced row).
type ForeignKeyError struct {
	Err error
}

func (e ForeignKeyError) Error() string { return "foreign key reference not found." }

func (e ForeignKeyError) Unwrap() error { return e.Err }

func IsShape(err error) bool {
	var target ShapeError
	return errors.As(err, &target)
}

func IsType(err error) bool {
	var target TypeError
	return errors.As(err, &target)
}

func IsEnum(err error) bool {
	var target EnumError
	return errors.As(err, &target)
}

func IsDateFormat(err error) bool {
	var target DateFormatError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsForeignKey(err error) bool {
	var target ForeignKeyError
	return errors.As(err, &target)
}

// NotFound builds a resource-specific not-found error from a verb, e.g.
// NotFound("property", "deleted") -> "property doesn't exist, no record deleted."
func NotFound(resource, verb string) NotFoundError {
	return NotFoundError{Msg: fmt.Sprintf("%s doesn't exist, no record %s.", resource, verb)}
}

// Package schema defines the error type raised when an upstream payload
// does not match its declared shape. Decoding itself is lenient (unknown
// fields are ignored so upstream API evolution does not break parsing);
// validation rejects payloads whose required fields are missing or invalid
// before they reach business logic.
package schema

import (
	"errors"
	"fmt"
)

// Error describes the first mismatch found while validating a decoded
// upstream payload against its declared shape.
type Error struct {
	Path string // JSON path of the offending field, e.g. "results[3].id"
	Want string // expected type or constraint, e.g. "positive integer"
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema violation at %s: want %s", e.Path, e.Want)
}

// Violation builds a schema error for the given path and expectation.
func Violation(path, want string) *Error {
	return &Error{Path: path, Want: want}
}

// Violationf builds a schema error with a formatted path.
func Violationf(want, pathFormat string, args ...any) *Error {
	return &Error{Path: fmt.Sprintf(pathFormat, args...), Want: want}
}

// Is reports whether err is a schema violation.
func Is(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

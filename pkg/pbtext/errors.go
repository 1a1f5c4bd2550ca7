package pbtext

import (
	"errors"
	"fmt"
)

// ErrAttributeNotFound reports a typed lookup of an attribute that does not exist.
var ErrAttributeNotFound = errors.New("attribute not found")

// ConversionError is returned by the typed attribute accessors when an
// attribute is absent or its text cannot be parsed as the requested type.
type ConversionError struct {
	// Name is the attribute that was looked up.
	Name string

	// Value is the raw attribute text; empty when the attribute is absent.
	Value string

	// Type is the requested Go type.
	Type string

	// Err is the underlying cause: ErrAttributeNotFound or a *strconv.NumError.
	Err error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if errors.Is(e.Err, ErrAttributeNotFound) {
		return fmt.Sprintf("attribute %q as %s: %v", e.Name, e.Type, e.Err)
	}
	return fmt.Sprintf("attribute %q: convert %q to %s: %v", e.Name, e.Value, e.Type, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

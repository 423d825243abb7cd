package binder

import "fmt"

// MalformedFieldError reports a scalar field that fails to convert to its
// expected numeric type, or that violates a structural invariant such as
// a required positive value.
type MalformedFieldError struct {
	Entity string // which document entity the field belongs to
	Field  string
	Value  string
	Err    error // underlying conversion error or constraint, may be nil
}

// Error implements the error interface.
func (e *MalformedFieldError) Error() string {
	msg := fmt.Sprintf("%s: malformed field %q: value %q", e.Entity, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// UnsupportedFeatureError reports a recognized-but-unimplemented document
// option, such as a collective molecule selector in a surface class
// property. Raising it instead of skipping keeps unimplemented input
// visible.
type UnsupportedFeatureError struct {
	Entity  string
	Feature string
}

// Error implements the error interface.
func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s: unsupported feature: %s", e.Entity, e.Feature)
}

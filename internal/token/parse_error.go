package token

import "fmt"

// ParseError reports a malformed mini-language token, such as an unmatched
// bracket in an object expression or an empty molecule token.
type ParseError struct {
	Input  string
	Detail string
	Err    error // underlying grammar error, may be nil
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed token %q: %s", e.Input, e.Detail)
	}
	return fmt.Sprintf("malformed token %q: %v", e.Input, e.Err)
}

// Unwrap exposes the underlying grammar error for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

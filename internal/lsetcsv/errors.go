package lsetcsv

import "fmt"

// GrammarError reports a line that does not split into the expected number of
// columns. Line numbers are 1-based and count every physical line, header
// included.
type GrammarError struct {
	Line int
	Got  int
	Want int
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Want, e.Got)
}

// CoercionError reports a column whose raw text cannot be converted to its
// schema type. It identifies the line, the column by name, and the offending
// raw value; the wrapped error carries the conversion detail.
type CoercionError struct {
	Line   int
	Column string
	Raw    string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("line %d: column %s: cannot decode %q: %v", e.Line, e.Column, e.Raw, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

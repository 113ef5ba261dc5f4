package model

import "fmt"

// ParseError reports a malformed input row. A single bad row fails the
// whole load: grid geometry depends on a complete, known-length sequence,
// so partial rendering is never attempted.
type ParseError struct {
	Line  int
	Field string
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: bad %s %q: %v", e.Line, e.Field, e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MissingDataError reports an absent or empty input dataset. Fatal; there
// is no fallback rendering mode.
type MissingDataError struct {
	Path string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no daylight data in %s", e.Path)
}

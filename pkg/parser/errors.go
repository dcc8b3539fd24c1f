package parser

import "fmt"

// StructuralError reports text that violates the marker vocabulary: a unit
// whose terminating boundary cannot be found before the end of text, a marker
// line without a terminating line ending, or a malformed marker payload.
// It is fatal to the extraction call that hit it.
type StructuralError struct {
	// Offset is the byte offset of the offending marker in the input.
	Offset int

	// Reason describes what was expected at the offset.
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at offset %d: %s", e.Offset, e.Reason)
}

// DateResolutionError reports a marker whose owning date could not be
// resolved: no preceding day heading exists, or the heading's digit run does
// not form a valid DD.MM.YYYY calendar date.
type DateResolutionError struct {
	// Offset is the byte offset of the marker whose date was requested.
	Offset int

	// Line is the day heading line that failed to parse, if one was found.
	Line string

	// Err is the underlying cause.
	Err error
}

func (e *DateResolutionError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("resolving date at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("resolving date at offset %d from day heading %q: %v", e.Offset, e.Line, e.Err)
}

func (e *DateResolutionError) Unwrap() error {
	return e.Err
}

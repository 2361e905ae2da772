package phone

import "fmt"

// ParseError reports that a candidate string could not be interpreted as a
// phone number. It is fatal for the lookup.
type ParseError struct {
	// Input is the candidate string that failed to parse.
	Input string

	// Err is the underlying diagnostic from the numbering-plan library.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse phone number %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

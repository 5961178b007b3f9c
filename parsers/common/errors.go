package common

import "fmt"

// ParserError represents a general parsing error raised by an adapter when
// it cannot produce a usable record from the file content.
type ParserError struct {
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parser error: %s", e.Message)
}

// NewParserError creates a new ParserError.
func NewParserError(message string) *ParserError {
	return &ParserError{Message: message}
}

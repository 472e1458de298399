package ingest

import "fmt"

// HTMLError represents a failure to parse HTML input.
type HTMLError struct {
	Message string
	Cause   error
}

func (e *HTMLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html ingest error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html ingest error: %s", e.Message)
}

func (e *HTMLError) Unwrap() error {
	return e.Cause
}

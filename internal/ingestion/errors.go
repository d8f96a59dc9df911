package ingestion

import "fmt"

// LoadError represents an error loading or converting an input document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

package validation

import "fmt"

// LoadError represents an error during file I/O or JSON parsing of the
// proposed-edits input
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("edits load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("edits load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EditError represents a structurally invalid entry in the proposed edits
type EditError struct {
	Index int
	Cause error
}

func (e *EditError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("edit %d: missing required fields: %v", e.Index, e.Cause)
	}
	return fmt.Sprintf("edit %d: missing required fields", e.Index)
}

func (e *EditError) Unwrap() error {
	return e.Cause
}

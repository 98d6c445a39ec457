package extract

import "fmt"

// BackendUnavailableError is returned when an explicitly requested backend
// is disabled or unknown. Auto-selection never produces it; unavailable
// backends are simply skipped during probing.
type BackendUnavailableError struct {
	Method Method
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("extraction backend %q is not available", e.Method)
}

// ExtractionError wraps a failure from the chosen backend during the real
// extraction run. Probe failures are swallowed and never reach callers.
type ExtractionError struct {
	Method Method
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction with method %q failed: %v", e.Method, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

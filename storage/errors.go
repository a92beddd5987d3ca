package storage

import "fmt"

// APIError represents a failed asset operation: a non-2xx response or a
// transport failure. StatusCode is 0 when the request never produced a
// response (network failure, timeout).
type APIError struct {
	// StatusCode is the HTTP status code, or 0 for transport failures.
	StatusCode int

	// Detail is the service's error detail when the body was parseable,
	// else the best-available diagnostic text.
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("storage: %s", e.Detail)
	}
	return fmt.Sprintf("storage: %s (HTTP %d)", e.Detail, e.StatusCode)
}

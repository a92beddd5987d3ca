package vault

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the service responded 404 for a
// name-addressed secret lookup or update.
type NotFoundError struct {
	// Name is the secret name that was not found.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vault: secret %q not found", e.Name)
}

// APIError represents any other failed vault operation: a non-2xx
// response, a transport failure or a malformed response body.
// StatusCode is 0 when the request never produced a response.
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
		return fmt.Sprintf("vault: %s", e.Detail)
	}
	return fmt.Sprintf("vault: %s (HTTP %d)", e.Detail, e.StatusCode)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

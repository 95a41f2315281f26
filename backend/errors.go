package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrUnauthorized is returned for every 401 response. It is handled globally
// (session teardown plus redirect to /login) and never reaches page state.
var ErrUnauthorized = errors.New("backend: unauthorized")

// GenericFailureMessage is shown when the backend gives no structured error.
const GenericFailureMessage = "Something went wrong. Please try again."

// APIError is a non-2xx backend response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.Status)
	}
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

// UserMessage is the best server-provided message, falling back to a generic
// failure string.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericFailureMessage
}

// StatusOf returns the HTTP status of an APIError, or 0 for transport-level
// failures (network errors, timeouts).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsTimeout reports whether err is a request-timeout or deadline failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

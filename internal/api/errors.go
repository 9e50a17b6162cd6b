package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const fallbackMessage = "An unexpected error occurred"

var ErrDecodeEnvelope = errors.New("failed to decode response envelope")

// APIError is a response the server answered with a failure, either by
// status code or by success=false in the envelope.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, ", ")
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// ErrorMessage turns any failure into one human-readable line: the server's
// message, else its joined errors, else the transport description, else a
// generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return fallbackMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if len(apiErr.Errors) > 0 {
			return strings.Join(apiErr.Errors, ", ")
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

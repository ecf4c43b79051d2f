package api

import (
	"errors"
	"fmt"
)

// StatusError is returned when the backend answers with a non-2xx
// status. Message carries the server-provided error text when the body
// contained one.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned HTTP %d for %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("backend returned HTTP %d for %s", e.Code, e.Path)
}

// UserMessage extracts a user-facing message from err. It returns the
// server-provided text for status errors that carry one, and fallback
// for everything else (raw transport errors are never shown to users).
func UserMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

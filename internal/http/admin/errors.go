package admin

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/bwise1/trailhead_admin/util/values"
)

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)SQLSTATE`),
	regexp.MustCompile(`(?i)select\s.*\sfrom\s`),
	regexp.MustCompile(`(?i)insert\s+into`),
	regexp.MustCompile(`(?i)update\s.*\sset`),
	regexp.MustCompile(`(?i)delete\s+from`),
	regexp.MustCompile(`(?i)Connection:\s*\w+,\s*Host:`),
	regexp.MustCompile(`(?i)target machine actively refused`),
	regexp.MustCompile(`(?i)stack\s*trace`),
	regexp.MustCompile(`at\s+\S+\s+\(\S+:\d+:\d+\)`),
	regexp.MustCompile(`(?i)vendor/`),
	regexp.MustCompile(`(?i)\.php`),
	regexp.MustCompile(`(?i)Exception\s+in`),
	regexp.MustCompile(`(?i)PDOException`),
	regexp.MustCompile(`(?i)QueryException`),
}

// SanitizeErrorMessage decides what a user may see for a failed request.
// Network failures (status 0) and 5xx always get a fixed message; 4xx
// messages pass through unless they are empty or leak server internals.
func SanitizeErrorMessage(message string, status int) string {
	if status <= 0 {
		return values.NetworkErrorFallback
	}
	if status >= 500 || message == "" {
		return values.ServerErrorFallback
	}
	for _, p := range sensitivePatterns {
		if p.MatchString(message) {
			return values.ServerErrorFallback
		}
	}
	return message
}

// ErrorBody is the backend failure body.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// APIError is returned for every failed request. Status is 0 when no
// response was received.
type APIError struct {
	Message string
	Status  int
	Data    *ErrorBody

	cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsValidation reports a 422 carrying per-field errors.
func (e *APIError) IsValidation() bool {
	return e.Status == 422 && e.Data != nil && len(e.Data.Errors) > 0
}

// FieldErrors keeps the first message per field.
func (e *APIError) FieldErrors() map[string]string {
	if e.Data == nil || len(e.Data.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Data.Errors))
	for field, msgs := range e.Data.Errors {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns the user facing message of err, or fallback when err
// did not come from the backend.
func Message(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Message
	}
	return fallback
}

func networkError(cause error) *APIError {
	return &APIError{Message: values.NetworkErrorFallback, Status: 0, cause: cause}
}

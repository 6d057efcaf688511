package apierrors

import "strings"

// APIError is an error that is safe to expose to API clients.
type APIError struct {
	Code     int
	Messages []string
}

func NewAPIError(code int, messages ...string) *APIError {
	return &APIError{Code: code, Messages: messages}
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

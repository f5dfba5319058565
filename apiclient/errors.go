package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed API call. Status is the HTTP status code, or 0 when the
// request never reached the backend. Fields carries per-field validation
// messages when the backend returned any.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: request failed: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// decodeError turns a non-2xx response body into an *Error. Bodies that are
// not the expected envelope fall back to the status text.
func decodeError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return &Error{Status: status, Message: eb.Message, Fields: eb.Errors}
	}
	return &Error{Status: status, Message: http.StatusText(status)}
}

func transportError(err error) *Error {
	return &Error{Message: err.Error()}
}

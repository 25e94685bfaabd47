package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Code classifies every failure the data layer can surface. Callers only
// ever see *Error values carrying one of these codes; transport-specific
// error types never leak past this package.
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeRateLimited  Code = "rate_limited"
	CodeServerError  Code = "server_error"
	CodeNetworkError Code = "network_error"
	CodeUnknown      Code = "unknown_error"
	CodeValidation   Code = "validation_error"
)

// Error is the uniform error shape for every failed operation.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Retryable reports whether a read may be retried after this error.
// Client-error classes (unauthorized, forbidden, not found, rate limited,
// validation) are never retried.
func (e *Error) Retryable() bool {
	return e.Code == CodeServerError || e.Code == CodeNetworkError
}

// Classify maps an HTTP error response to a uniform *Error. The response
// body is decoded for a server-supplied message when possible.
func Classify(status int, body []byte) *Error {
	var payload struct {
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = http.StatusText(status)
	}

	var code Code
	switch {
	case status == http.StatusUnauthorized:
		code = CodeUnauthorized
	case status == http.StatusForbidden:
		code = CodeForbidden
	case status == http.StatusNotFound:
		code = CodeNotFound
	case status == http.StatusTooManyRequests:
		code = CodeRateLimited
	case status >= 500:
		code = CodeServerError
	default:
		code = CodeUnknown
	}

	return &Error{Code: code, Message: message, Details: payload.Details}
}

// NetworkError wraps a transport failure (request made, no response).
func NetworkError(err error) *Error {
	return &Error{
		Code:    CodeNetworkError,
		Message: "network error - please check your connection",
		Details: map[string]any{"cause": err.Error()},
	}
}

// ValidationError reports a client-side input failure. No network call is
// made for these.
func ValidationError(message string, details map[string]any) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// unknownError wraps anything that is neither an HTTP error nor a
// transport failure.
func unknownError(err error) *Error {
	return &Error{Code: CodeUnknown, Message: err.Error()}
}

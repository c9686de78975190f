package httpapi

import (
	"fmt"
)

// Machine-readable error codes surfaced to clients.
const (
	CodeValidation    = "validation"
	CodeRateLimited   = "rate_limited"
	CodeMissingAPIKey = "missing_api_key"
	CodeInternal      = "internal"
)

// Error is the canonical error payload for the JSON API.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Status     int    `json:"status"`
	Transient  bool   `json:"transient"`
	RetryAfter int    `json:"retry_after,omitempty"`
	Hint       string `json:"hint,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func statusForCode(code string) int {
	switch code {
	case CodeValidation:
		return 400
	case CodeRateLimited:
		return 429
	case CodeMissingAPIKey:
		return 500
	default:
		return 500
	}
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: statusForCode(code)}
}

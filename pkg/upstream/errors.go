package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies upstream failures so handlers can switch on a code
// instead of matching message substrings.
type ErrorCode string

const (
	CodeInsufficientStock  ErrorCode = "INSUFFICIENT_STOCK"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeBadRequest         ErrorCode = "BAD_REQUEST"
	CodeUnavailable        ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeUnknown            ErrorCode = "UNKNOWN"
)

// APIError is a failure reported by (or while reaching) the upstream API.
type APIError struct {
	Code       ErrorCode
	Message    string
	Remaining  *int // remaining stock, when the upstream provides it
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Remaining != nil {
		return fmt.Sprintf("%s (remaining stock: %d)", e.Message, *e.Remaining)
	}
	return e.Message
}

// AsAPIError unwraps err into an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody covers both the structured error shape the upstream is moving to
// ({code, message, remaining}) and the legacy message-only shape.
type errorBody struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	Error          string `json:"error"`
	Remaining      *int   `json:"remaining"`
	RemainingStock *int   `json:"remainingStock"`
}

// DecodeError turns an upstream error response into an APIError. Structured
// codes win; legacy message-only bodies are classified by the substring
// conventions the old front-end relied on.
func DecodeError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Code:       CodeUnknown,
		Message:    "An unexpected error occurred",
		StatusCode: statusCode,
	}

	var parsed errorBody
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Message != "" {
				apiErr.Message = parsed.Message
			} else if parsed.Error != "" {
				apiErr.Message = parsed.Error
			}
			if parsed.Remaining != nil {
				apiErr.Remaining = parsed.Remaining
			} else if parsed.RemainingStock != nil {
				apiErr.Remaining = parsed.RemainingStock
			}
			if parsed.Code != "" {
				apiErr.Code = ErrorCode(parsed.Code)
				return apiErr
			}
		}
	}

	apiErr.Code = classify(statusCode, apiErr.Message)
	return apiErr
}

// classify maps legacy message text and status codes onto error codes.
func classify(statusCode int, message string) ErrorCode {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "insufficient stock"):
		return CodeInsufficientStock
	case strings.Contains(lower, "not found") || strings.Contains(lower, "no record found"):
		return CodeNotFound
	case strings.Contains(lower, "incorrect password"):
		return CodeInvalidCredentials
	}

	switch statusCode {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusBadRequest:
		return CodeBadRequest
	}
	return CodeUnknown
}

// unavailable wraps a transport-level failure (connection refused, timeout,
// cancelled context) that never produced an upstream response.
func unavailable(err error) *APIError {
	return &APIError{
		Code:       CodeUnavailable,
		Message:    "Upstream service unavailable: " + err.Error(),
		StatusCode: http.StatusBadGateway,
	}
}

package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTransport indicates a network-level failure (connection
	// refused, DNS, TLS handshake). The underlying error is preserved
	// via Unwrap and is never folded into the status taxonomy.
	ErrCodeTransport ErrorCode = iota
	// ErrCodeTimeout indicates the request or connection timed out.
	ErrCodeTimeout
	// ErrCodeStatus indicates the server answered with status >= 400.
	ErrCodeStatus
	// ErrCodeSerialization indicates the request body could not be
	// JSON-encoded. Raised before dispatch.
	ErrCodeSerialization
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeStatus:
		return "status"
	case ErrCodeSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for transport-level errors).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the raw response body for status errors (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a network-level failure.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

// NewTimeoutError wraps a timeout.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewStatusError creates an error for a status >= 400 response. The raw
// response body is preserved for caller inspection.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeStatus,
		StatusCode: statusCode,
		Message:    string(body),
		Body:       body,
	}
}

// NewSerializationError creates an error for a body that failed to encode.
func NewSerializationError(err error) *Error {
	return &Error{Code: ErrCodeSerialization, Message: err.Error(), Err: err}
}

// ClassifyStatusCode converts a status code into a typed error.
// Returns nil for codes below 400.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode < 400 {
		return nil
	}
	return NewStatusError(statusCode, body)
}

// IsStatus checks if an error is a status error, returning its code.
func IsStatus(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeStatus {
		return e.StatusCode, true
	}
	return 0, false
}

// IsTransport checks if an error is a network-level error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsNotFound checks if an error is a 404 status error.
func IsNotFound(err error) bool {
	code, ok := IsStatus(err)
	return ok && code == 404
}

// IsAuth checks if an error is a 401 or 403 status error.
func IsAuth(err error) bool {
	code, ok := IsStatus(err)
	return ok && (code == 401 || code == 403)
}

// IsServerError checks if an error is a 5xx status error.
func IsServerError(err error) bool {
	code, ok := IsStatus(err)
	return ok && code >= 500
}

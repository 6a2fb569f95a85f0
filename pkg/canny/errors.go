package canny

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError is a connection level failure: the request never produced an HTTP response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when the server answered with a non-2xx status.
// Body is kept verbatim; it may hold a server error payload that is not parsed further.
type APIError struct {
	StatusCode int    `json:"status" yaml:"status"`
	Body       string `json:"body"   yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("API error (%d %s): %s", e.StatusCode, text, e.Body)
}

// DecodeError is returned when a 2xx response body does not match the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError is bad input detected locally, before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Common static errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrConfigRequired    = errors.New("config is required")
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrAPIURLRequired    = errors.New("API URL is required")
	ErrCacheDisabled     = errors.New("cache disabled")
	ErrCacheKeyNotFound  = errors.New("key not found")
	ErrCacheEntryExpired = errors.New("entry expired")
)

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsStatus reports whether err wraps an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

// IsDecodeError reports whether err is or wraps a *DecodeError.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsTransportError reports whether err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

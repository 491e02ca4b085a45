package coda

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a rejection from the Coda API. The server responded
// with a failure status; StatusCode and Message carry the server's answer
// verbatim.
type APIError struct {
	StatusCode    int    `json:"statusCode"    yaml:"statusCode"`
	StatusMessage string `json:"statusMessage" yaml:"statusMessage"`
	Message       string `json:"message"       yaml:"message"`

	// Body is the raw response body as received.
	Body []byte `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(string(e.Body))
	}

	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("coda: %s (status: %d)", msg, e.StatusCode)
}

// AmbiguousReferenceError is returned when a name-based lookup that
// requires a unique target matches more than one object.
type AmbiguousReferenceError struct {
	// Kind names the resource family, e.g. "table" or "column".
	Kind string
	// Name is the searched display name.
	Name string
	// Matches holds the ids of every object carrying that name, in
	// listing order.
	Matches []string
}

// Error implements the error interface.
func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("ambiguous %s name %q: matches %s", e.Kind, e.Name, strings.Join(e.Matches, ", "))
}

// Common static errors that can be wrapped with context.
var (
	ErrTransport       = errors.New("transport failure")
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrConfigRequired  = errors.New("config is required")
	ErrClientRequired  = errors.New("client is required")
	ErrNotFound        = errors.New("not found")
	ErrInvalidFilter   = errors.New("invalid filter expression")
	ErrInvalidEndpoint = errors.New("invalid API endpoint")
	ErrNoMoreItems     = errors.New("no more items")
	ErrReadOnlyColumn  = errors.New("column is calculated and read-only")
)

// IsNotFound checks if the error is a not found rejection.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication rejection.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization rejection.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsTooManyRequests checks if the error is a rate-limit rejection.
func IsTooManyRequests(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsTransport checks if the error is a transport failure rather than a
// server rejection.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAmbiguous checks if the error is an ambiguous name reference.
func IsAmbiguous(err error) bool {
	ambErr := &AmbiguousReferenceError{}

	return errors.As(err, &ambErr)
}

// ParseAPIError decodes an error response body into an APIError. The raw
// body is preserved even when it is not the documented JSON envelope.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}

	if len(body) > 0 {
		// Best effort: the envelope is {statusCode, statusMessage, message}.
		_ = json.Unmarshal(body, apiErr)
	}

	apiErr.StatusCode = statusCode
	if apiErr.StatusMessage == "" {
		apiErr.StatusMessage = http.StatusText(statusCode)
	}

	return apiErr
}

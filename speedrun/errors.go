package speedrun

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidParameterName indicates a parameter name outside the known vocabulary
	ErrInvalidParameterName = errors.New("invalid query parameter name")
	// ErrInvalidParameterValue indicates a parameter value that cannot be used for its name
	ErrInvalidParameterValue = errors.New("invalid query parameter value")
	// ErrWrongParameterCount indicates the endpoint's parameter count rule was violated
	ErrWrongParameterCount = errors.New("incorrect amount of parameters specified")
	// ErrInvalidIdentifier indicates an empty or unusable resource id
	ErrInvalidIdentifier = errors.New("invalid resource identifier")
	// ErrTransport indicates the HTTP call could not be completed
	ErrTransport = errors.New("speedrun.com request failed")
	// ErrDecode indicates the response body did not match the expected shape
	ErrDecode = errors.New("failed to decode speedrun.com response")
)

// InvalidParameterError is returned when a parameter cannot be added to a Request.
type InvalidParameterError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidParameterError) Error() string {
	if errors.Is(e.Err, ErrInvalidParameterName) {
		return fmt.Sprintf("invalid query parameter: %s", e.Name)
	}
	return fmt.Sprintf("invalid query parameter: %s=%s", e.Name, e.Value)
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Err
}

// ParameterCountError is returned when the encoded parameter count of a locator
// violates the rule of its endpoint.
type ParameterCountError struct {
	Endpoint Endpoint
	Expected string
	Got      int
}

func (e *ParameterCountError) Error() string {
	return fmt.Sprintf("incorrect amount of parameters specified for %s (expected %s, got %d)",
		e.Endpoint.Kind(), e.Expected, e.Got)
}

// Is reports whether target is ErrWrongParameterCount
func (e *ParameterCountError) Is(target error) bool {
	return target == ErrWrongParameterCount
}

// TransportError represents a failed HTTP exchange. StatusCode is zero when no
// response was received at all.
type TransportError struct {
	URL        string
	StatusCode int
	Message    string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
	}
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		msg = "(empty error body)"
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, msg)
}

// Unwrap exposes both ErrTransport and the underlying cause
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsNotFound checks if the upstream answered 404
func (e *TransportError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if the upstream answered 420 or 429.
// speedrun.com uses 420 for throttling.
func (e *TransportError) IsRateLimited() bool {
	return e.StatusCode == 420 || e.StatusCode == http.StatusTooManyRequests
}

// DecodeError is returned when a response body cannot be decoded into its envelope.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

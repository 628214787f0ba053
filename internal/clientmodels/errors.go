package clientmodels

import "fmt"

// ValidationError reports caller input rejected before any request was made.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// UrlConstructionError reports a configured endpoint that does not form a
// valid request URL.
type UrlConstructionError struct {
	Base  string
	Cause error
}

func (e *UrlConstructionError) Error() string {
	return fmt.Sprintf("cannot build catalog url from %q, err: %v", e.Base, e.Cause)
}

func (e *UrlConstructionError) Unwrap() error {
	return e.Cause
}

// TransportError reports a request that could not be completed, either a
// network-level failure or a non-2xx service response.
type TransportError struct {
	Url        string
	StatusCode int
	ApiError   *APIErrorResponse
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("error getting data from %s, err: %v", e.Url, e.Cause)
	}
	if e.ApiError != nil && e.ApiError.Message != "" {
		return fmt.Sprintf("error getting data from %s, status code: %d, message: %s", e.Url, e.StatusCode, e.ApiError.Message)
	}
	return fmt.Sprintf("error getting data from %s, status code: %d", e.Url, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// DecodeError reports a response body that was received but is not valid JSON
// or does not match the expected schema.
type DecodeError struct {
	Url   string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %s, err: %v", e.Url, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

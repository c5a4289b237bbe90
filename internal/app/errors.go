package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// UpstreamError is returned when one of the external dependencies (github, completion api) fails.
type UpstreamError struct {
	Op  string
	Err error
}

// Error implements error interface
func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError checks if given error is caused by failing dependency.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

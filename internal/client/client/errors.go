package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("rejected by server")

	errUnexpectedStatus = errors.New("http error")
)

// APIError is returned for every non-2xx response. It unwraps to one of the
// sentinel errors above so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	err        error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: %d", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%v: %d: %s", e.err, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

func statusError(code int, message string) error {
	e := &APIError{StatusCode: code, Message: message}
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.err = ErrUnauthorized
	case http.StatusNotFound:
		e.err = ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		e.err = ErrValidation
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.err = ErrUnavailable
	default:
		e.err = errUnexpectedStatus
	}
	return e
}

// mapError classifies a transport-level failure (no response received).
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// Message returns the backend-provided message carried by err, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/session"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSessionExpired: the token could not be refreshed, log in again.
	ErrSessionExpired = session.ErrSessionExpired
	// ErrLoggedOut: the user logged out while the request waited for a refresh.
	ErrLoggedOut = session.ErrLoggedOut

	ErrEmptyAccessToken = errors.New("no access token in response")
)

// DecodeError reports a response body that does not match the expected
// schema of Resource.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

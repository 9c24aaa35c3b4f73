package session

import "errors"

var (
	// ErrSessionExpired is delivered to queued requests when the refresh
	// fails. The session is cleared and the user has to log in again.
	ErrSessionExpired = errors.New("session expired")

	// ErrLoggedOut is delivered to queued requests when the user logs out
	// while a refresh is in flight.
	ErrLoggedOut = errors.New("logged out")

	// ErrRefreshSuperseded is returned by Ticket.Complete and Ticket.Fail
	// when a login or logout happened after the refresh began. The outcome
	// is discarded.
	ErrRefreshSuperseded = errors.New("refresh superseded")
)

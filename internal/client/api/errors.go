package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API client. Callers match with errors.Is.
var (
	// ErrUnavailable means no candidate endpoint could be reached at the
	// transport level.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized means the service rejected the request's credentials.
	// An expired server-side token surfaces here like any other rejection;
	// the client performs no expiry handling of its own.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountNotFound means a login attempt referenced an unknown account.
	// The shell reacts by advising sign-up.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBadResponse means the service answered with a non-JSON body where
	// JSON was expected.
	ErrBadResponse = errors.New("server returned non-JSON response")
)

// APIError carries a structured remote failure: an HTTP status plus the
// message the service sent, surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

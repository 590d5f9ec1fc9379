package auth

import "errors"

var (
	// ErrNotAuthenticated indicates the session carries no authenticated
	// principal.
	ErrNotAuthenticated = errors.New("session is not authenticated")

	// ErrSessionExpired indicates the authenticated session outlived its
	// fixed idle window and has been destroyed server-side.
	ErrSessionExpired = errors.New("session expired")
)

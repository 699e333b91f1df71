package session

import "errors"

var (
	// ErrNotAuthenticated is returned when no session is active.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned when the stored token's exp claim has
	// passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidToken is returned when the token cannot be parsed or lacks
	// a user identifier.
	ErrInvalidToken = errors.New("invalid session token")
)

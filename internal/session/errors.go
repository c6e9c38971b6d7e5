package session

import "errors"

// Failure modes of the session lifecycle. Handlers translate these into
// HTTP statuses and messages; nothing here leaks whether a username exists
// or which half of a credential pair was wrong.
var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken means the refresh token failed signature
	// verification, is unknown to the store, or was already revoked.
	ErrInvalidToken = errors.New("invalid refresh token")

	// ErrTokenExpired means the store row passed its hard TTL. The row is
	// revoked as a side effect.
	ErrTokenExpired = errors.New("refresh token expired")

	// ErrSessionIdle means the idle window since last activity elapsed,
	// regardless of the hard TTL. The row is revoked as a side effect.
	ErrSessionIdle = errors.New("session idle limit exceeded")

	// ErrDuplicateUser is returned by Register when the normalized name or
	// the username is already taken.
	ErrDuplicateUser = errors.New("name or username already exists")
)

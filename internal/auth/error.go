package auth

import "errors"

var (
	// -- Session --
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrMissingToken     = errors.New("server returned no token")

	// -- Persistence --
	ErrFailedPersistSession = errors.New("failed to persist session")
)

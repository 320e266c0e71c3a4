package port

import "errors"

var (
	// ErrNotFound signals that a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals that the caller does not own the record it is
	// trying to act on.
	ErrForbidden = errors.New("forbidden")
	// ErrEmailTaken signals a registration attempt with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation wraps input validation failures; the wrapped message is
	// safe to show to the client.
	ErrValidation = errors.New("validation failed")
)

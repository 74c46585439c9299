package services

import "errors"

// ErrNotFound covers both "does not exist" and "owned by someone
// else"; callers must not be able to tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned on any failed login, whether the
// user is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError carries a human-readable message safe to return to
// the caller with a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

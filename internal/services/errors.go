package services

import (
	"errors"
	"strings"
)

var (
	// ErrUserAlreadyExists is returned when the username or the email is taken.
	ErrUserAlreadyExists = errors.New("username or email already registered")
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized is returned when a token does not resolve to a user.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrNotFound is returned for rows that are absent or owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps input errors, e.g. "validation failed: machine is required".
	ErrValidation = errors.New("validation failed")
)

// trimmed returns the trimmed value of s, or nil when s is nil or blank.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

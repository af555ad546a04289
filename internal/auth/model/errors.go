package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates that the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole indicates that the registration role is not coach or athlete.
	ErrInvalidRole = errors.New("role must be coach or athlete")
	// ErrSessionNotFound indicates a missing or expired session token.
	ErrSessionNotFound = errors.New("session not found or expired")
)

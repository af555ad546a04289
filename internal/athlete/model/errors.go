package model

import "errors"

var (
	// ErrNotMember indicates that the athlete is not on the team roster.
	ErrNotMember = errors.New("athlete not on team")
	// ErrUserNotFound indicates that the athlete user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

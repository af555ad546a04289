package model

import "errors"

var (
	// ErrAthleteNotFound indicates that the athlete user does not exist.
	ErrAthleteNotFound = errors.New("athlete not found")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
)

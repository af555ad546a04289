package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMetricExists indicates that the team already defines a metric with that name.
	ErrMetricExists = errors.New("metric already defined for team")
	// ErrMetricNotFound indicates that the team does not define the metric.
	ErrMetricNotFound = errors.New("metric not found")
	// ErrAlreadyMember indicates that the athlete is already on the roster.
	ErrAlreadyMember = errors.New("athlete already on team")
	// ErrNotMember indicates that the athlete is not on the roster.
	ErrNotMember = errors.New("athlete not on team")
	// ErrAthleteNotFound indicates that the athlete user does not exist.
	ErrAthleteNotFound = errors.New("athlete not found")
	// ErrInvalidRole indicates that the role is not one of the assignable roles.
	ErrInvalidRole = errors.New("invalid member role")
	// ErrNotTeamCoach indicates that the acting coach does not own the team.
	ErrNotTeamCoach = errors.New("team belongs to another coach")
)

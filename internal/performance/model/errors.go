package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMetricNotFound indicates that the team does not define the metric.
	ErrMetricNotFound = errors.New("metric not defined for team")
	// ErrAthleteNotFound indicates that the athlete user does not exist.
	ErrAthleteNotFound = errors.New("athlete not found")
	// ErrNotMember indicates that the athlete is not on the team roster.
	ErrNotMember = errors.New("athlete not on team")
	// ErrCustomMetricExists indicates that the athlete already owns a metric
	// with that name.
	ErrCustomMetricExists = errors.New("custom metric already defined")
	// ErrCustomMetricNotFound indicates that the athlete does not own the metric.
	ErrCustomMetricNotFound = errors.New("custom metric not found")
	// ErrNoData indicates that there are no performance rows for the query.
	ErrNoData = errors.New("no performance data")
	// ErrInvalidReportType indicates an unsupported report_type value.
	ErrInvalidReportType = errors.New("invalid report type")
)

// Package model provides domain models and DTOs for performance module.
package model

import "time"

// RecordRequest represents the request to record a team performance.
type RecordRequest struct {
	AthleteID  string  `json:"athlete_id"  binding:"required"`
	MetricName string  `json:"metric_name" binding:"required"`
	Value      float64 `json:"value"`
	Notes      string  `json:"notes"       binding:"max=200"`
}

// RecordCustomRequest represents the request to record a value against an
// athlete-owned custom metric. The resulting row carries no team.
type RecordCustomRequest struct {
	MetricName string  `json:"metric_name" binding:"required"`
	Value      float64 `json:"value"`
	Notes      string  `json:"notes"       binding:"max=200"`
}

// AddCustomMetricRequest represents the request to define a custom metric
// for an athlete.
type AddCustomMetricRequest struct {
	Name        string   `json:"name"        binding:"required,max=50"`
	Description string   `json:"description" binding:"max=200"`
	Unit        string   `json:"unit"        binding:"max=20"`
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
	Weight      *float64 `json:"weight"`
}

// SeriesPoint represents one point of a metric's chart series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// AthleteSeriesPoint represents one point of a team-wide metric series.
type AthleteSeriesPoint struct {
	Date    string  `json:"date"`
	Athlete string  `json:"athlete"`
	Value   float64 `json:"value"`
}

// MetricAverage represents aggregate statistics for one team metric.
type MetricAverage struct {
	Average float64 `json:"avg"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Unit    string  `json:"unit"`
}

// Milestone represents a significant change between two consecutive records
// of the same metric.
type Milestone struct {
	Date      time.Time `json:"date"`
	Metric    string    `json:"metric"`
	OldValue  float64   `json:"old_value"`
	NewValue  float64   `json:"new_value"`
	ChangePct float64   `json:"change_pct"`
}

// ComparisonEntry represents one athlete's latest value for a metric in a
// teammate comparison, ordered by value descending.
type ComparisonEntry struct {
	AthleteID string    `json:"athlete_id"`
	Athlete   string    `json:"athlete"`
	Value     float64   `json:"value"`
	Date      time.Time `json:"date"`
}

// ReportRequest represents the request to generate a performance report.
type ReportRequest struct {
	TeamID     string     `json:"team_id"     binding:"required"`
	ReportType string     `json:"report_type" binding:"required"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
}

// Report types accepted by the reports endpoint.
const (
	ReportTeamPerformance   = "team_performance"
	ReportAthleteComparison = "athlete_comparison"
)

// ReportRow represents one row of a team performance report.
type ReportRow struct {
	Date    string  `json:"date"`
	Athlete string  `json:"athlete"`
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
	Notes   string  `json:"notes"`
}

// ReportResponse represents a generated report. Rows is populated for
// team_performance reports; Comparison (metric -> athlete -> latest value)
// for athlete_comparison reports. CSV carries the team_performance rows as
// a downloadable body.
type ReportResponse struct {
	TeamID     string                        `json:"team_id"`
	ReportType string                        `json:"report_type"`
	DateFrom   time.Time                     `json:"date_from"`
	DateTo     time.Time                     `json:"date_to"`
	Rows       []ReportRow                   `json:"rows,omitempty"`
	Comparison map[string]map[string]float64 `json:"comparison,omitempty"`
}

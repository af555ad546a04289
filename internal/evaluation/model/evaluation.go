// Package model provides domain models for the evaluation engine.
package model

import "time"

// Trend tags attached to each scored metric.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
)

// Summary texts by overall score tier.
const (
	SummaryOutstanding  = "Outstanding performer and key team asset"
	SummaryStrong       = "Strong performer with consistent contributions"
	SummaryAverage      = "Average performer with potential for improvement"
	SummaryBelowAverage = "Below average performer requiring focused development"
	SummaryPoor         = "Needs significant improvement in multiple areas"

	// SummaryNoTeams is returned when the athlete belongs to no team and no
	// team filter was given.
	SummaryNoTeams = "No team data available for evaluation"
)

// RecommendationNoTeams is the single recommendation returned alongside
// SummaryNoTeams.
const RecommendationNoTeams = "Add athlete to a team to start tracking performance"

// MetricScore holds the scoring detail for one metric.
type MetricScore struct {
	Value         float64  `json:"value"`
	RawScore      float64  `json:"raw_score"`
	Weight        float64  `json:"weight"`
	WeightedScore float64  `json:"weighted_score"`
	Unit          string   `json:"unit,omitempty"`
	Percentile    *float64 `json:"percentile,omitempty"`
	Trend         string   `json:"trend"`
	TeamID        string   `json:"team_id,omitempty"`
}

// Result is the composite output of one evaluation run.
type Result struct {
	AthleteID       string                 `json:"athlete_id"`
	Athlete         string                 `json:"athlete"`
	Score           int                    `json:"score"`
	Summary         string                 `json:"summary"`
	Recommendations []string               `json:"recommendations"`
	Metrics         map[string]MetricScore `json:"metrics"`
	Strengths       []string               `json:"strengths"`
	Weaknesses      []string               `json:"weaknesses"`
	TeamScores      map[string]float64     `json:"team_scores"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// Package model provides domain models and DTOs for team module.
package model

import "time"

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string `json:"name"        binding:"required,max=50"`
	Sport       string `json:"sport"       binding:"required,max=50"`
	Description string `json:"description" binding:"max=200"`
}

// AddMetricRequest represents the request to append a metric definition
// to a team's catalog. Bounds are optional; absent bounds default to 0/100.
// Degenerate bounds (max <= min) are stored as given: the evaluation engine
// falls back to percentile scoring for such metrics.
type AddMetricRequest struct {
	Name        string   `json:"name"        binding:"required,max=50"`
	Description string   `json:"description" binding:"max=200"`
	Unit        string   `json:"unit"        binding:"max=20"`
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
}

// AddAthleteRequest represents the request to add an athlete to a team.
type AddAthleteRequest struct {
	AthleteID string `json:"athlete_id" binding:"required"`
	Role      string `json:"role"`
}

// UpdateRoleRequest represents the request to change a member's role.
type UpdateRoleRequest struct {
	AthleteID string `json:"athlete_id" binding:"required"`
	Role      string `json:"role"       binding:"required"`
}

// MemberInfo represents one roster entry in team responses.
type MemberInfo struct {
	AthleteID string `json:"athlete_id"`
	Username  string `json:"username"`
	Role      string `json:"role,omitempty"`
}

// TeamResponse represents a team with its roster and metric catalog.
type TeamResponse struct {
	Team    Team         `json:"team"`
	Members []MemberInfo `json:"members"`
	Metrics []Metric     `json:"metrics"`
}

// ListTeamsResponse represents the response for listing teams.
type ListTeamsResponse struct {
	Teams []Team `json:"teams"`
	Total int    `json:"total"`
}

// RecentPerformance represents one row of the coach dashboard's recent
// performance list.
type RecentPerformance struct {
	AthleteID  string    `gorm:"column:athlete_id"  json:"athlete_id"`
	Athlete    string    `gorm:"column:athlete"     json:"athlete"`
	MetricName string    `gorm:"column:metric_name" json:"metric_name"`
	Value      float64   `gorm:"column:value"       json:"value"`
	RecordedAt time.Time `gorm:"column:recorded_at" json:"recorded_at"`
}

// DashboardResponse represents the coach dashboard summary.
type DashboardResponse struct {
	Teams              []Team              `json:"teams"`
	AthleteCount       int64               `json:"athlete_count"`
	UnreadCount        int64               `json:"unread_count"`
	RecentPerformances []RecentPerformance `json:"recent_performances"`
}

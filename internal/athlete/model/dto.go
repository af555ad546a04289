// Package model provides DTOs for the athlete-facing module.
package model

import (
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// DashboardResponse represents the athlete dashboard payload.
type DashboardResponse struct {
	Teams              []teamModel.Team               `json:"teams"`
	RecentPerformances []performanceModel.Performance `json:"recent_performances"`
	UnreadCount        int64                          `json:"unread_count"`
}

// ProfileResponse represents the athlete profile payload with the recorded
// history grouped by metric.
type ProfileResponse struct {
	UserID               string                                    `json:"user_id"`
	Username             string                                    `json:"username"`
	Email                string                                    `json:"email"`
	CustomMetrics        []performanceModel.CustomMetric           `json:"custom_metrics"`
	PerformancesByMetric map[string][]performanceModel.Performance `json:"performances_by_metric"`
}

// TeamStatsResponse represents one team's view for a roster athlete.
type TeamStatsResponse struct {
	Team         *teamModel.TeamResponse                   `json:"team"`
	Performances []performanceModel.Performance            `json:"performances"`
	Averages     map[string]performanceModel.MetricAverage `json:"averages"`
}

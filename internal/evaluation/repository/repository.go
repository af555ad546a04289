// Package repository provides the read-only data access the evaluation
// engine needs. The engine performs no writes.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/evaluation/model"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// Repository defines the interface for evaluation data access operations.
type Repository interface {
	// GetAthleteUsername resolves an athlete's username.
	GetAthleteUsername(ctx context.Context, athleteID string) (string, error)

	// TeamExists reports whether the team exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)

	// ListTeamIDsForAthlete returns the teams whose roster contains the athlete.
	ListTeamIDsForAthlete(ctx context.Context, athleteID string) ([]string, error)

	// GetMemberRole returns the athlete's role on a team, empty when the
	// athlete is not on the roster or has no role assigned.
	GetMemberRole(ctx context.Context, teamID, athleteID string) (string, error)

	// ListTeamMetrics returns a team's metric catalog.
	ListTeamMetrics(ctx context.Context, teamID string) ([]teamModel.Metric, error)

	// ListAthleteTeamPerformances returns the athlete's rows across the given
	// teams, newest first. Custom (teamless) rows are excluded.
	ListAthleteTeamPerformances(ctx context.Context, athleteID string, teamIDs []string) ([]performanceModel.Performance, error)

	// ListMetricPerformances returns every athlete's rows for one team
	// metric, newest first.
	ListMetricPerformances(ctx context.Context, teamID, metricName string) ([]performanceModel.Performance, error)

	// ListCustomMetrics returns the athlete's custom metric definitions.
	ListCustomMetrics(ctx context.Context, athleteID string) ([]performanceModel.CustomMetric, error)

	// ListCustomPerformances returns the athlete's teamless rows, newest first.
	ListCustomPerformances(ctx context.Context, athleteID string) ([]performanceModel.Performance, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new evaluation repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetAthleteUsername resolves an athlete's username.
func (r *repository) GetAthleteUsername(ctx context.Context, athleteID string) (string, error) {
	var usernames []string
	err := r.db.WithContext(ctx).
		Table("users").
		Where("user_id = ? AND role = ?", athleteID, "athlete").
		Limit(1).
		Pluck("username", &usernames).Error

	if err != nil {
		r.logger.Errorw("GetAthleteUsername database error", "athlete_id", athleteID, "error", err)
		return "", err
	}
	if len(usernames) == 0 {
		return "", model.ErrAthleteNotFound
	}

	return usernames[0], nil
}

// TeamExists reports whether the team exists.
func (r *repository) TeamExists(ctx context.Context, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("team_id = ?", teamID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("TeamExists database error", "team_id", teamID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// ListTeamIDsForAthlete returns the teams whose roster contains the athlete.
func (r *repository) ListTeamIDsForAthlete(ctx context.Context, athleteID string) ([]string, error) {
	var teamIDs []string
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("athlete_id = ?", athleteID).
		Order("added_at ASC").
		Pluck("team_id", &teamIDs).Error

	if err != nil {
		r.logger.Errorw("ListTeamIDsForAthlete database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if teamIDs == nil {
		teamIDs = []string{}
	}

	return teamIDs, nil
}

// GetMemberRole returns the athlete's role on a team, empty when the athlete
// is not on the roster or has no role assigned.
func (r *repository) GetMemberRole(ctx context.Context, teamID, athleteID string) (string, error) {
	var roles []string
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		Limit(1).
		Pluck("role", &roles).Error

	if err != nil {
		r.logger.Errorw("GetMemberRole database error", "team_id", teamID, "error", err)
		return "", err
	}
	if len(roles) == 0 {
		return "", nil
	}

	return roles[0], nil
}

// ListTeamMetrics returns a team's metric catalog.
func (r *repository) ListTeamMetrics(ctx context.Context, teamID string) ([]teamModel.Metric, error) {
	var metrics []teamModel.Metric
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&metrics).Error

	if err != nil {
		r.logger.Errorw("ListTeamMetrics database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if metrics == nil {
		metrics = []teamModel.Metric{}
	}

	return metrics, nil
}

// ListAthleteTeamPerformances returns the athlete's rows across the given
// teams, newest first. Ties on recorded_at resolve by id descending so the
// latest record is stable.
func (r *repository) ListAthleteTeamPerformances(ctx context.Context, athleteID string, teamIDs []string) ([]performanceModel.Performance, error) {
	if len(teamIDs) == 0 {
		return []performanceModel.Performance{}, nil
	}

	var performances []performanceModel.Performance
	err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND team_id IN ?", athleteID, teamIDs).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListAthleteTeamPerformances database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []performanceModel.Performance{}
	}

	return performances, nil
}

// ListMetricPerformances returns every athlete's rows for one team metric,
// newest first.
func (r *repository) ListMetricPerformances(ctx context.Context, teamID, metricName string) ([]performanceModel.Performance, error) {
	var performances []performanceModel.Performance
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND metric_name = ?", teamID, metricName).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListMetricPerformances database error", "team_id", teamID, "metric", metricName, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []performanceModel.Performance{}
	}

	return performances, nil
}

// ListCustomMetrics returns the athlete's custom metric definitions.
func (r *repository) ListCustomMetrics(ctx context.Context, athleteID string) ([]performanceModel.CustomMetric, error) {
	var metrics []performanceModel.CustomMetric
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("id ASC").
		Find(&metrics).Error

	if err != nil {
		r.logger.Errorw("ListCustomMetrics database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if metrics == nil {
		metrics = []performanceModel.CustomMetric{}
	}

	return metrics, nil
}

// ListCustomPerformances returns the athlete's teamless rows, newest first.
func (r *repository) ListCustomPerformances(ctx context.Context, athleteID string) ([]performanceModel.Performance, error) {
	var performances []performanceModel.Performance
	err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND team_id IS NULL", athleteID).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListCustomPerformances database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []performanceModel.Performance{}
	}

	return performances, nil
}

// Package repository provides data access layer for performance module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// Repository defines the interface for performance data access operations.
type Repository interface {
	// Create inserts a new performance row.
	Create(ctx context.Context, p *model.Performance) error

	// TeamExists reports whether the team exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)

	// GetTeamMetric finds one metric definition in a team's catalog.
	GetTeamMetric(ctx context.Context, teamID, name string) (*teamModel.Metric, error)

	// ListTeamMetrics returns a team's metric catalog.
	ListTeamMetrics(ctx context.Context, teamID string) ([]teamModel.Metric, error)

	// IsMember reports whether the athlete is on the team roster.
	IsMember(ctx context.Context, teamID, athleteID string) (bool, error)

	// AthleteExists reports whether the athlete user exists.
	AthleteExists(ctx context.Context, athleteID string) (bool, error)

	// ListUsernames resolves user IDs to usernames.
	ListUsernames(ctx context.Context, userIDs []string) (map[string]string, error)

	// ListForAthlete returns the athlete's performances, newest first.
	// With teamID set only that team's rows are returned; with teamOnly set
	// custom (teamless) rows are excluded.
	ListForAthlete(ctx context.Context, athleteID string, teamID string, teamOnly bool) ([]model.Performance, error)

	// ListCustomForAthlete returns the athlete's teamless rows, newest first.
	ListCustomForAthlete(ctx context.Context, athleteID string) ([]model.Performance, error)

	// ListForTeam returns all of a team's performances, newest first.
	ListForTeam(ctx context.Context, teamID string) ([]model.Performance, error)

	// ListForTeamMetric returns all athletes' rows for one team metric,
	// newest first.
	ListForTeamMetric(ctx context.Context, teamID, metricName string) ([]model.Performance, error)

	// ListAthleteMetric returns one athlete's rows for one team metric,
	// oldest first.
	ListAthleteMetric(ctx context.Context, teamID, athleteID, metricName string) ([]model.Performance, error)

	// ListForTeamInRange returns a team's rows within a time range, oldest first.
	ListForTeamInRange(ctx context.Context, teamID string, from, to time.Time) ([]model.Performance, error)

	// CreateCustomMetric inserts a custom metric definition.
	CreateCustomMetric(ctx context.Context, m *model.CustomMetric) error

	// GetCustomMetric finds an athlete's custom metric by name.
	GetCustomMetric(ctx context.Context, athleteID, name string) (*model.CustomMetric, error)

	// ListCustomMetrics returns an athlete's custom metric definitions.
	ListCustomMetrics(ctx context.Context, athleteID string) ([]model.CustomMetric, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new performance repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new performance row.
func (r *repository) Create(ctx context.Context, p *model.Performance) error {
	r.logger.Debugw("Create called", "athlete_id", p.AthleteID, "metric", p.MetricName)

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		r.logger.Errorw("Create database error", "athlete_id", p.AthleteID, "error", err)
		return err
	}

	return nil
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

// GetTeamMetric finds one metric definition in a team's catalog.
func (r *repository) GetTeamMetric(ctx context.Context, teamID, name string) (*teamModel.Metric, error) {
	var metric teamModel.Metric
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND name = ?", teamID, name).
		First(&metric).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMetricNotFound
		}
		r.logger.Errorw("GetTeamMetric database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &metric, nil
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

// IsMember reports whether the athlete is on the team roster.
func (r *repository) IsMember(ctx context.Context, teamID, athleteID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("IsMember database error", "team_id", teamID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// AthleteExists reports whether the athlete user exists.
func (r *repository) AthleteExists(ctx context.Context, athleteID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("user_id = ? AND role = ?", athleteID, "athlete").
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("AthleteExists database error", "athlete_id", athleteID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// ListUsernames resolves user IDs to usernames.
func (r *repository) ListUsernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}

	var rows []struct {
		UserID   string `gorm:"column:user_id"`
		Username string `gorm:"column:username"`
	}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("user_id, username").
		Where("user_id IN ?", userIDs).
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("ListUsernames database error", "error", err)
		return nil, err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.UserID] = row.Username
	}

	return names, nil
}

// ListForAthlete returns the athlete's performances, newest first.
// Ties on recorded_at resolve by id descending so "latest" is stable.
func (r *repository) ListForAthlete(ctx context.Context, athleteID string, teamID string, teamOnly bool) ([]model.Performance, error) {
	query := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID)
	if teamID != "" {
		query = query.Where("team_id = ?", teamID)
	} else if teamOnly {
		query = query.Where("team_id IS NOT NULL")
	}

	var performances []model.Performance
	err := query.Order("recorded_at DESC, id DESC").Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListForAthlete database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// ListCustomForAthlete returns the athlete's teamless rows, newest first.
func (r *repository) ListCustomForAthlete(ctx context.Context, athleteID string) ([]model.Performance, error) {
	var performances []model.Performance
	err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND team_id IS NULL", athleteID).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListCustomForAthlete database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// ListForTeam returns all of a team's performances, newest first.
func (r *repository) ListForTeam(ctx context.Context, teamID string) ([]model.Performance, error) {
	var performances []model.Performance
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListForTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// ListForTeamMetric returns all athletes' rows for one team metric, newest first.
func (r *repository) ListForTeamMetric(ctx context.Context, teamID, metricName string) ([]model.Performance, error) {
	var performances []model.Performance
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND metric_name = ?", teamID, metricName).
		Order("recorded_at DESC, id DESC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListForTeamMetric database error", "team_id", teamID, "metric", metricName, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// ListAthleteMetric returns one athlete's rows for one team metric, oldest first.
func (r *repository) ListAthleteMetric(ctx context.Context, teamID, athleteID, metricName string) ([]model.Performance, error) {
	var performances []model.Performance
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND athlete_id = ? AND metric_name = ?", teamID, athleteID, metricName).
		Order("recorded_at ASC, id ASC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListAthleteMetric database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// ListForTeamInRange returns a team's rows within a time range, oldest first.
func (r *repository) ListForTeamInRange(ctx context.Context, teamID string, from, to time.Time) ([]model.Performance, error) {
	var performances []model.Performance
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND recorded_at >= ? AND recorded_at <= ?", teamID, from, to).
		Order("recorded_at ASC, id ASC").
		Find(&performances).Error

	if err != nil {
		r.logger.Errorw("ListForTeamInRange database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if performances == nil {
		performances = []model.Performance{}
	}

	return performances, nil
}

// CreateCustomMetric inserts a custom metric definition.
func (r *repository) CreateCustomMetric(ctx context.Context, m *model.CustomMetric) error {
	r.logger.Debugw("CreateCustomMetric called", "athlete_id", m.AthleteID, "name", m.Name)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CustomMetric{}).
		Where("athlete_id = ? AND name = ?", m.AthleteID, m.Name).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CreateCustomMetric lookup error", "athlete_id", m.AthleteID, "error", err)
		return err
	}
	if count > 0 {
		return model.ErrCustomMetricExists
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Errorw("CreateCustomMetric database error", "athlete_id", m.AthleteID, "error", err)
		return err
	}

	return nil
}

// GetCustomMetric finds an athlete's custom metric by name.
func (r *repository) GetCustomMetric(ctx context.Context, athleteID, name string) (*model.CustomMetric, error) {
	var metric model.CustomMetric
	err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND name = ?", athleteID, name).
		First(&metric).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomMetricNotFound
		}
		r.logger.Errorw("GetCustomMetric database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	return &metric, nil
}

// ListCustomMetrics returns an athlete's custom metric definitions.
func (r *repository) ListCustomMetrics(ctx context.Context, athleteID string) ([]model.CustomMetric, error) {
	var metrics []model.CustomMetric
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("id ASC").
		Find(&metrics).Error

	if err != nil {
		r.logger.Errorw("ListCustomMetrics database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if metrics == nil {
		metrics = []model.CustomMetric{}
	}

	return metrics, nil
}

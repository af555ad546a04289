// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// CreateTeam inserts a new team row.
	CreateTeam(ctx context.Context, team *model.Team) error

	// GetTeam finds a team by team_id.
	GetTeam(ctx context.Context, teamID string) (*model.Team, error)

	// ListTeamsByCoach returns teams owned by a coach.
	ListTeamsByCoach(ctx context.Context, coachID string) ([]model.Team, error)

	// ListTeamsForAthlete returns teams whose roster contains the athlete.
	ListTeamsForAthlete(ctx context.Context, athleteID string) ([]model.Team, error)

	// ListMetrics returns a team's metric catalog in insertion order.
	ListMetrics(ctx context.Context, teamID string) ([]model.Metric, error)

	// AddMetric appends a metric definition to a team's catalog.
	AddMetric(ctx context.Context, metric *model.Metric) error

	// ListMembers returns the team roster joined with usernames.
	ListMembers(ctx context.Context, teamID string) ([]model.MemberInfo, error)

	// AddMember adds an athlete to the roster.
	AddMember(ctx context.Context, member *model.Member) error

	// UpdateMemberRole changes a roster entry's role.
	UpdateMemberRole(ctx context.Context, teamID, athleteID, role string) error

	// GetMemberRole returns the athlete's role on the team; empty when the
	// roster entry has no role assigned.
	GetMemberRole(ctx context.Context, teamID, athleteID string) (string, error)

	// GetAthleteUsername returns the username of a registered athlete user.
	GetAthleteUsername(ctx context.Context, athleteID string) (string, error)

	// CountAthletes returns the number of registered athlete users.
	CountAthletes(ctx context.Context) (int64, error)

	// ListRecentPerformances returns the most recent performances recorded
	// by a coach, newest first.
	ListRecentPerformances(ctx context.Context, recordedBy string, limit int) ([]model.RecentPerformance, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateTeam inserts a new team row.
func (r *repository) CreateTeam(ctx context.Context, team *model.Team) error {
	r.logger.Debugw("CreateTeam called", "team_id", team.TeamID, "name", team.Name)

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		r.logger.Errorw("CreateTeam database error", "team_id", team.TeamID, "error", err)
		return err
	}

	return nil
}

// GetTeam finds a team by team_id.
func (r *repository) GetTeam(ctx context.Context, teamID string) (*model.Team, error) {
	r.logger.Debugw("GetTeam called", "team_id", teamID)

	var team model.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &team, nil
}

// ListTeamsByCoach returns teams owned by a coach.
func (r *repository) ListTeamsByCoach(ctx context.Context, coachID string) ([]model.Team, error) {
	r.logger.Debugw("ListTeamsByCoach called", "coach_id", coachID)

	var teams []model.Team
	err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("ListTeamsByCoach database error", "coach_id", coachID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}

// ListTeamsForAthlete returns teams whose roster contains the athlete.
func (r *repository) ListTeamsForAthlete(ctx context.Context, athleteID string) ([]model.Team, error) {
	r.logger.Debugw("ListTeamsForAthlete called", "athlete_id", athleteID)

	var teams []model.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.team_id").
		Where("team_members.athlete_id = ?", athleteID).
		Order("teams.created_at ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("ListTeamsForAthlete database error", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}

// ListMetrics returns a team's metric catalog in insertion order.
func (r *repository) ListMetrics(ctx context.Context, teamID string) ([]model.Metric, error) {
	var metrics []model.Metric
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&metrics).Error

	if err != nil {
		r.logger.Errorw("ListMetrics database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if metrics == nil {
		metrics = []model.Metric{}
	}

	return metrics, nil
}

// AddMetric appends a metric definition to a team's catalog.
func (r *repository) AddMetric(ctx context.Context, metric *model.Metric) error {
	r.logger.Debugw("AddMetric called", "team_id", metric.TeamID, "name", metric.Name)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Metric{}).
		Where("team_id = ? AND name = ?", metric.TeamID, metric.Name).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("AddMetric lookup error", "team_id", metric.TeamID, "error", err)
		return err
	}
	if count > 0 {
		return model.ErrMetricExists
	}

	if err := r.db.WithContext(ctx).Create(metric).Error; err != nil {
		r.logger.Errorw("AddMetric database error", "team_id", metric.TeamID, "error", err)
		return err
	}

	return nil
}

// ListMembers returns the team roster joined with usernames.
func (r *repository) ListMembers(ctx context.Context, teamID string) ([]model.MemberInfo, error) {
	var members []model.MemberInfo
	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.athlete_id, users.username, team_members.role").
		Joins("JOIN users ON users.user_id = team_members.athlete_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.added_at ASC").
		Scan(&members).Error

	if err != nil {
		r.logger.Errorw("ListMembers database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if members == nil {
		members = []model.MemberInfo{}
	}

	return members, nil
}

// AddMember adds an athlete to the roster.
func (r *repository) AddMember(ctx context.Context, member *model.Member) error {
	r.logger.Debugw("AddMember called", "team_id", member.TeamID, "athlete_id", member.AthleteID)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("team_id = ? AND athlete_id = ?", member.TeamID, member.AthleteID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("AddMember lookup error", "team_id", member.TeamID, "error", err)
		return err
	}
	if count > 0 {
		return model.ErrAlreadyMember
	}

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		r.logger.Errorw("AddMember database error", "team_id", member.TeamID, "error", err)
		return err
	}

	return nil
}

// UpdateMemberRole changes a roster entry's role.
func (r *repository) UpdateMemberRole(ctx context.Context, teamID, athleteID, role string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		Update("role", role)

	if result.Error != nil {
		r.logger.Errorw("UpdateMemberRole database error", "team_id", teamID, "error", result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return model.ErrNotMember
	}

	return nil
}

// GetMemberRole returns the athlete's role on the team.
func (r *repository) GetMemberRole(ctx context.Context, teamID, athleteID string) (string, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", model.ErrNotMember
		}
		r.logger.Errorw("GetMemberRole database error", "team_id", teamID, "error", err)
		return "", err
	}

	return member.Role, nil
}

// GetAthleteUsername returns the username of a registered athlete user.
func (r *repository) GetAthleteUsername(ctx context.Context, athleteID string) (string, error) {
	var username string
	err := r.db.WithContext(ctx).
		Table("users").
		Where("user_id = ? AND role = ?", athleteID, "athlete").
		Pluck("username", &username).Error

	if err != nil {
		r.logger.Errorw("GetAthleteUsername database error", "athlete_id", athleteID, "error", err)
		return "", err
	}

	if username == "" {
		return "", model.ErrAthleteNotFound
	}

	return username, nil
}

// CountAthletes returns the number of registered athlete users.
func (r *repository) CountAthletes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("role = ?", "athlete").
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountAthletes database error", "error", err)
		return 0, err
	}

	return count, nil
}

// ListRecentPerformances returns the most recent performances recorded by a coach.
func (r *repository) ListRecentPerformances(ctx context.Context, recordedBy string, limit int) ([]model.RecentPerformance, error) {
	var rows []model.RecentPerformance
	err := r.db.WithContext(ctx).
		Table("performances").
		Select("performances.athlete_id, users.username as athlete, performances.metric_name, performances.value, performances.recorded_at").
		Joins("JOIN users ON users.user_id = performances.athlete_id").
		Where("performances.recorded_by = ?", recordedBy).
		Order("performances.recorded_at DESC, performances.id DESC").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("ListRecentPerformances database error", "recorded_by", recordedBy, "error", err)
		return nil, err
	}

	if rows == nil {
		rows = []model.RecentPerformance{}
	}

	return rows, nil
}

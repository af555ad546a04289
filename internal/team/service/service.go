// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationModel "github.com/coachlab/evaluator/internal/notification/model"
	notification "github.com/coachlab/evaluator/internal/notification/service"
	"github.com/coachlab/evaluator/internal/team/model"
	"github.com/coachlab/evaluator/internal/team/repository"
)

// recentPerformanceLimit bounds the coach dashboard's recent performance list.
const recentPerformanceLimit = 5

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team owned by the coach.
	CreateTeam(ctx context.Context, coachID string, req *model.CreateTeamRequest) (*model.Team, error)

	// ListTeams returns teams owned by the coach.
	ListTeams(ctx context.Context, coachID string) (*model.ListTeamsResponse, error)

	// GetTeam returns a team with its roster and metric catalog.
	GetTeam(ctx context.Context, teamID string) (*model.TeamResponse, error)

	// AddMetric appends a metric definition to the team's catalog.
	AddMetric(ctx context.Context, teamID string, req *model.AddMetricRequest) (*model.Metric, error)

	// AddCricketMetrics applies the cricket preset, skipping names the team
	// already defines.
	AddCricketMetrics(ctx context.Context, teamID string) ([]model.Metric, error)

	// AddAthlete adds an athlete to the roster and notifies them.
	AddAthlete(ctx context.Context, teamID string, req *model.AddAthleteRequest) error

	// UpdateRole changes a roster member's role.
	UpdateRole(ctx context.Context, teamID string, req *model.UpdateRoleRequest) error

	// Dashboard returns the coach dashboard summary.
	Dashboard(ctx context.Context, coachID string) (*model.DashboardResponse, error)

	// ListTeamsForAthlete returns teams the athlete belongs to.
	ListTeamsForAthlete(ctx context.Context, athleteID string) (*model.ListTeamsResponse, error)
}

type service struct {
	repo     repository.Repository
	notifier notification.Service
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, notifier notification.Service, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// CreateTeam creates a new team owned by the coach.
func (s *service) CreateTeam(ctx context.Context, coachID string, req *model.CreateTeamRequest) (*model.Team, error) {
	s.logger.Debugw("CreateTeam called", "coach_id", coachID, "name", req.Name)

	team := &model.Team{
		TeamID:      uuid.NewString(),
		Name:        req.Name,
		CoachID:     coachID,
		Sport:       req.Sport,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateTeam(ctx, team); err != nil {
		s.logger.Errorw("CreateTeam failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	s.logger.Infow("CreateTeam completed", "team_id", team.TeamID, "name", team.Name)
	return team, nil
}

// ListTeams returns teams owned by the coach.
func (s *service) ListTeams(ctx context.Context, coachID string) (*model.ListTeamsResponse, error) {
	teams, err := s.repo.ListTeamsByCoach(ctx, coachID)
	if err != nil {
		s.logger.Errorw("ListTeams failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	return &model.ListTeamsResponse{Teams: teams, Total: len(teams)}, nil
}

// GetTeam returns a team with its roster and metric catalog.
func (s *service) GetTeam(ctx context.Context, teamID string) (*model.TeamResponse, error) {
	s.logger.Debugw("GetTeam called", "team_id", teamID)

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, teamID)
	if err != nil {
		s.logger.Errorw("GetTeam members failed", "team_id", teamID, "error", err)
		return nil, err
	}

	metrics, err := s.repo.ListMetrics(ctx, teamID)
	if err != nil {
		s.logger.Errorw("GetTeam metrics failed", "team_id", teamID, "error", err)
		return nil, err
	}

	return &model.TeamResponse{Team: *team, Members: members, Metrics: metrics}, nil
}

// AddMetric appends a metric definition to the team's catalog. Bounds are
// stored as given; degenerate bounds are legal and handled downstream by the
// evaluation engine's percentile fallback.
func (s *service) AddMetric(ctx context.Context, teamID string, req *model.AddMetricRequest) (*model.Metric, error) {
	s.logger.Debugw("AddMetric called", "team_id", teamID, "name", req.Name)

	if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	minValue, maxValue := 0.0, 100.0
	if req.MinValue != nil {
		minValue = *req.MinValue
	}
	if req.MaxValue != nil {
		maxValue = *req.MaxValue
	}

	metric := &model.Metric{
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		MinValue:    minValue,
		MaxValue:    maxValue,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.AddMetric(ctx, metric); err != nil {
		if !errors.Is(err, model.ErrMetricExists) {
			s.logger.Errorw("AddMetric failed", "team_id", teamID, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("AddMetric completed", "team_id", teamID, "name", metric.Name)
	return metric, nil
}

// AddCricketMetrics applies the cricket preset, skipping names the team
// already defines.
func (s *service) AddCricketMetrics(ctx context.Context, teamID string) ([]model.Metric, error) {
	s.logger.Debugw("AddCricketMetrics called", "team_id", teamID)

	if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	var added []model.Metric
	for _, def := range model.CricketMetricDefs() {
		metric := &model.Metric{
			TeamID:      teamID,
			Name:        def.Name,
			Description: def.Description,
			Unit:        def.Unit,
			MinValue:    def.MinValue,
			MaxValue:    def.MaxValue,
			CreatedAt:   time.Now(),
		}

		err := s.repo.AddMetric(ctx, metric)
		if errors.Is(err, model.ErrMetricExists) {
			continue
		}
		if err != nil {
			s.logger.Errorw("AddCricketMetrics failed", "team_id", teamID, "name", def.Name, "error", err)
			return nil, err
		}
		added = append(added, *metric)
	}

	if added == nil {
		added = []model.Metric{}
	}

	s.logger.Infow("AddCricketMetrics completed", "team_id", teamID, "added", len(added))
	return added, nil
}

// AddAthlete adds an athlete to the roster and notifies them.
func (s *service) AddAthlete(ctx context.Context, teamID string, req *model.AddAthleteRequest) error {
	s.logger.Debugw("AddAthlete called", "team_id", teamID, "athlete_id", req.AthleteID)

	if !model.ValidMemberRole(req.Role) {
		return model.ErrInvalidRole
	}

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetAthleteUsername(ctx, req.AthleteID); err != nil {
		return err
	}

	member := &model.Member{
		TeamID:    teamID,
		AthleteID: req.AthleteID,
		Role:      req.Role,
		AddedAt:   time.Now(),
	}

	if err := s.repo.AddMember(ctx, member); err != nil {
		if !errors.Is(err, model.ErrAlreadyMember) {
			s.logger.Errorw("AddAthlete failed", "team_id", teamID, "error", err)
		}
		return err
	}

	message := fmt.Sprintf("You have been added to the team '%s'", team.Name)
	if err := s.notifier.Notify(ctx, req.AthleteID, message, notificationModel.TypeTeamAddition, teamID); err != nil {
		// Roster change already committed; the notification is best effort.
		s.logger.Warnw("AddAthlete notification failed", "team_id", teamID, "athlete_id", req.AthleteID, "error", err)
	}

	s.logger.Infow("AddAthlete completed", "team_id", teamID, "athlete_id", req.AthleteID)
	return nil
}

// UpdateRole changes a roster member's role.
func (s *service) UpdateRole(ctx context.Context, teamID string, req *model.UpdateRoleRequest) error {
	s.logger.Debugw("UpdateRole called", "team_id", teamID, "athlete_id", req.AthleteID, "role", req.Role)

	if !model.ValidMemberRole(req.Role) || req.Role == "" {
		return model.ErrInvalidRole
	}

	if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.repo.UpdateMemberRole(ctx, teamID, req.AthleteID, req.Role); err != nil {
		if !errors.Is(err, model.ErrNotMember) {
			s.logger.Errorw("UpdateRole failed", "team_id", teamID, "error", err)
		}
		return err
	}

	s.logger.Infow("UpdateRole completed", "team_id", teamID, "athlete_id", req.AthleteID, "role", req.Role)
	return nil
}

// Dashboard returns the coach dashboard summary.
func (s *service) Dashboard(ctx context.Context, coachID string) (*model.DashboardResponse, error) {
	s.logger.Debugw("Dashboard called", "coach_id", coachID)

	teams, err := s.repo.ListTeamsByCoach(ctx, coachID)
	if err != nil {
		s.logger.Errorw("Dashboard teams failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	athleteCount, err := s.repo.CountAthletes(ctx)
	if err != nil {
		s.logger.Errorw("Dashboard athlete count failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	unread, err := s.notifier.UnreadCount(ctx, coachID)
	if err != nil {
		s.logger.Errorw("Dashboard unread count failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	recent, err := s.repo.ListRecentPerformances(ctx, coachID, recentPerformanceLimit)
	if err != nil {
		s.logger.Errorw("Dashboard recent performances failed", "coach_id", coachID, "error", err)
		return nil, err
	}

	return &model.DashboardResponse{
		Teams:              teams,
		AthleteCount:       athleteCount,
		UnreadCount:        unread,
		RecentPerformances: recent,
	}, nil
}

// ListTeamsForAthlete returns teams the athlete belongs to.
func (s *service) ListTeamsForAthlete(ctx context.Context, athleteID string) (*model.ListTeamsResponse, error) {
	teams, err := s.repo.ListTeamsForAthlete(ctx, athleteID)
	if err != nil {
		s.logger.Errorw("ListTeamsForAthlete failed", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	return &model.ListTeamsResponse{Teams: teams, Total: len(teams)}, nil
}

// Package service provides business logic layer for the athlete-facing module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/athlete/model"
	"github.com/coachlab/evaluator/internal/athlete/repository"
	notificationService "github.com/coachlab/evaluator/internal/notification/service"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	performanceService "github.com/coachlab/evaluator/internal/performance/service"
	teamService "github.com/coachlab/evaluator/internal/team/service"
)

// recentPerformanceLimit caps the dashboard's recent activity list.
const recentPerformanceLimit = 5

// Service defines the interface for athlete-facing business logic operations.
type Service interface {
	// Dashboard returns the athlete's teams, recent records and unread count.
	Dashboard(ctx context.Context, athleteID string) (*model.DashboardResponse, error)

	// Profile returns the athlete's account and history grouped by metric.
	Profile(ctx context.Context, athleteID string) (*model.ProfileResponse, error)

	// TeamStats returns one team's roster, catalog, history and averages.
	// The athlete must be on the roster.
	TeamStats(ctx context.Context, athleteID, teamID string) (*model.TeamStatsResponse, error)

	// Compare ranks the roster's latest values for one team metric. The
	// athlete must be on the roster.
	Compare(ctx context.Context, athleteID, teamID, metricName string) ([]performanceModel.ComparisonEntry, error)

	// History returns the athlete's own chart series for one team metric.
	History(ctx context.Context, athleteID, teamID, metricName string) ([]performanceModel.SeriesPoint, error)
}

type service struct {
	repo         repository.Repository
	teams        teamService.Service
	performances performanceService.Service
	notifier     notificationService.Service
	logger       *zap.SugaredLogger
}

// New creates a new athlete service instance.
func New(
	repo repository.Repository,
	teams teamService.Service,
	performances performanceService.Service,
	notifier notificationService.Service,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:         repo,
		teams:        teams,
		performances: performances,
		notifier:     notifier,
		logger:       logger,
	}
}

// Dashboard returns the athlete's teams, recent records and unread count.
func (s *service) Dashboard(ctx context.Context, athleteID string) (*model.DashboardResponse, error) {
	s.logger.Debugw("Dashboard called", "athlete_id", athleteID)

	teams, err := s.teams.ListTeamsForAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	performances, err := s.performances.ListAthlete(ctx, athleteID, "")
	if err != nil {
		return nil, err
	}
	if len(performances) > recentPerformanceLimit {
		performances = performances[:recentPerformanceLimit]
	}

	unread, err := s.notifier.UnreadCount(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return &model.DashboardResponse{
		Teams:              teams.Teams,
		RecentPerformances: performances,
		UnreadCount:        unread,
	}, nil
}

// Profile returns the athlete's account and history grouped by metric.
func (s *service) Profile(ctx context.Context, athleteID string) (*model.ProfileResponse, error) {
	s.logger.Debugw("Profile called", "athlete_id", athleteID)

	profile, err := s.repo.GetProfile(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	performances, err := s.performances.ListAthlete(ctx, athleteID, "")
	if err != nil {
		return nil, err
	}

	byMetric := make(map[string][]performanceModel.Performance)
	for _, p := range performances {
		byMetric[p.MetricName] = append(byMetric[p.MetricName], p)
	}

	customMetrics, err := s.performances.ListCustomMetrics(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResponse{
		UserID:               profile.UserID,
		Username:             profile.Username,
		Email:                profile.Email,
		CustomMetrics:        customMetrics,
		PerformancesByMetric: byMetric,
	}, nil
}

// TeamStats returns one team's roster, catalog, history and averages.
func (s *service) TeamStats(ctx context.Context, athleteID, teamID string) (*model.TeamStatsResponse, error) {
	s.logger.Debugw("TeamStats called", "athlete_id", athleteID, "team_id", teamID)

	if err := s.requireMembership(ctx, teamID, athleteID); err != nil {
		return nil, err
	}

	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	performances, err := s.performances.ListTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	averages, err := s.performances.TeamAverages(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &model.TeamStatsResponse{
		Team:         team,
		Performances: performances,
		Averages:     averages,
	}, nil
}

// Compare ranks the roster's latest values for one team metric.
func (s *service) Compare(ctx context.Context, athleteID, teamID, metricName string) ([]performanceModel.ComparisonEntry, error) {
	s.logger.Debugw("Compare called", "athlete_id", athleteID, "team_id", teamID, "metric", metricName)

	if err := s.requireMembership(ctx, teamID, athleteID); err != nil {
		return nil, err
	}

	return s.performances.Compare(ctx, teamID, metricName)
}

// History returns the athlete's own chart series for one team metric.
func (s *service) History(ctx context.Context, athleteID, teamID, metricName string) ([]performanceModel.SeriesPoint, error) {
	s.logger.Debugw("History called", "athlete_id", athleteID, "team_id", teamID, "metric", metricName)

	if err := s.requireMembership(ctx, teamID, athleteID); err != nil {
		return nil, err
	}

	return s.performances.AthleteSeries(ctx, teamID, athleteID, metricName)
}

func (s *service) requireMembership(ctx context.Context, teamID, athleteID string) error {
	member, err := s.repo.IsMember(ctx, teamID, athleteID)
	if err != nil {
		return err
	}
	if !member {
		return model.ErrNotMember
	}
	return nil
}

// Package service provides business logic layer for performance module.
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	notificationModel "github.com/coachlab/evaluator/internal/notification/model"
	notificationService "github.com/coachlab/evaluator/internal/notification/service"
	"github.com/coachlab/evaluator/internal/performance/model"
	"github.com/coachlab/evaluator/internal/performance/repository"
)

// MilestoneThresholdPct is the minimum relative change between two
// consecutive records of a metric that counts as a milestone.
const MilestoneThresholdPct = 10.0

// SeriesDateLayout formats timestamps for chart series points.
const SeriesDateLayout = "2006-01-02"

// Service defines the interface for performance business logic operations.
type Service interface {
	// Record stores a team performance observation and notifies the athlete.
	Record(ctx context.Context, teamID, recordedBy string, req *model.RecordRequest) (*model.Performance, error)

	// RecordCustom stores a value against an athlete-owned custom metric.
	RecordCustom(ctx context.Context, athleteID string, req *model.RecordCustomRequest) (*model.Performance, error)

	// AddCustomMetric defines a custom metric for an athlete.
	AddCustomMetric(ctx context.Context, athleteID string, req *model.AddCustomMetricRequest) (*model.CustomMetric, error)

	// ListCustomMetrics returns an athlete's custom metric definitions.
	ListCustomMetrics(ctx context.Context, athleteID string) ([]model.CustomMetric, error)

	// ListAthlete returns an athlete's recorded history, newest first.
	ListAthlete(ctx context.Context, athleteID, teamID string) ([]model.Performance, error)

	// ListTeam returns a team's recorded history, newest first.
	ListTeam(ctx context.Context, teamID string) ([]model.Performance, error)

	// TeamSeries returns the chart series of one team metric across all
	// athletes, oldest first.
	TeamSeries(ctx context.Context, teamID, metricName string) ([]model.AthleteSeriesPoint, error)

	// AthleteSeries returns the chart series of one team metric for one
	// athlete, oldest first.
	AthleteSeries(ctx context.Context, teamID, athleteID, metricName string) ([]model.SeriesPoint, error)

	// TeamAverages returns aggregate statistics per team metric with data.
	TeamAverages(ctx context.Context, teamID string) (map[string]model.MetricAverage, error)

	// Milestones returns the significant changes in an athlete's history.
	Milestones(ctx context.Context, athleteID string) ([]model.Milestone, error)

	// Compare returns each roster athlete's latest value for a team metric,
	// best value first.
	Compare(ctx context.Context, teamID, metricName string) ([]model.ComparisonEntry, error)

	// Report generates a team performance or athlete comparison report.
	Report(ctx context.Context, req *model.ReportRequest) (*model.ReportResponse, error)
}

type service struct {
	repo     repository.Repository
	notifier notificationService.Service
	logger   *zap.SugaredLogger
}

// New creates a new performance service instance.
func New(repo repository.Repository, notifier notificationService.Service, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Record stores a team performance observation and notifies the athlete.
func (s *service) Record(ctx context.Context, teamID, recordedBy string, req *model.RecordRequest) (*model.Performance, error) {
	s.logger.Debugw("Record called", "team_id", teamID, "athlete_id", req.AthleteID, "metric", req.MetricName)

	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrTeamNotFound
	}

	if _, err := s.repo.GetTeamMetric(ctx, teamID, req.MetricName); err != nil {
		return nil, err
	}

	member, err := s.repo.IsMember(ctx, teamID, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, model.ErrNotMember
	}

	p := &model.Performance{
		AthleteID:  req.AthleteID,
		TeamID:     &teamID,
		MetricName: req.MetricName,
		Value:      req.Value,
		RecordedBy: recordedBy,
		Notes:      req.Notes,
		RecordedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Errorw("Record failed", "team_id", teamID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("New performance recorded: %s = %g", req.MetricName, req.Value)
	if err := s.notifier.Notify(ctx, req.AthleteID, message, notificationModel.TypePerformanceUpdate, teamID); err != nil {
		s.logger.Errorw("Record notification failed", "athlete_id", req.AthleteID, "error", err)
	}

	s.logger.Infow("performance recorded", "team_id", teamID, "athlete_id", req.AthleteID, "metric", req.MetricName)
	return p, nil
}

// RecordCustom stores a value against an athlete-owned custom metric.
func (s *service) RecordCustom(ctx context.Context, athleteID string, req *model.RecordCustomRequest) (*model.Performance, error) {
	s.logger.Debugw("RecordCustom called", "athlete_id", athleteID, "metric", req.MetricName)

	if _, err := s.repo.GetCustomMetric(ctx, athleteID, req.MetricName); err != nil {
		return nil, err
	}

	p := &model.Performance{
		AthleteID:  athleteID,
		TeamID:     nil,
		MetricName: req.MetricName,
		Value:      req.Value,
		RecordedBy: athleteID,
		Notes:      req.Notes,
		RecordedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Errorw("RecordCustom failed", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	s.logger.Infow("custom performance recorded", "athlete_id", athleteID, "metric", req.MetricName)
	return p, nil
}

// AddCustomMetric defines a custom metric for an athlete.
func (s *service) AddCustomMetric(ctx context.Context, athleteID string, req *model.AddCustomMetricRequest) (*model.CustomMetric, error) {
	s.logger.Debugw("AddCustomMetric called", "athlete_id", athleteID, "name", req.Name)

	m := &model.CustomMetric{
		AthleteID:   athleteID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		MinValue:    0,
		MaxValue:    100,
		Weight:      1,
		CreatedAt:   time.Now(),
	}
	if req.MinValue != nil {
		m.MinValue = *req.MinValue
	}
	if req.MaxValue != nil {
		m.MaxValue = *req.MaxValue
	}
	if req.Weight != nil {
		m.Weight = *req.Weight
	}

	if err := s.repo.CreateCustomMetric(ctx, m); err != nil {
		s.logger.Errorw("AddCustomMetric failed", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	s.logger.Infow("custom metric added", "athlete_id", athleteID, "name", req.Name)
	return m, nil
}

// ListCustomMetrics returns an athlete's custom metric definitions.
func (s *service) ListCustomMetrics(ctx context.Context, athleteID string) ([]model.CustomMetric, error) {
	return s.repo.ListCustomMetrics(ctx, athleteID)
}

// ListAthlete returns an athlete's recorded history, newest first.
func (s *service) ListAthlete(ctx context.Context, athleteID, teamID string) ([]model.Performance, error) {
	s.logger.Debugw("ListAthlete called", "athlete_id", athleteID, "team_id", teamID)
	return s.repo.ListForAthlete(ctx, athleteID, teamID, false)
}

// ListTeam returns a team's recorded history, newest first.
func (s *service) ListTeam(ctx context.Context, teamID string) ([]model.Performance, error) {
	s.logger.Debugw("ListTeam called", "team_id", teamID)

	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrTeamNotFound
	}

	return s.repo.ListForTeam(ctx, teamID)
}

// TeamSeries returns the chart series of one team metric across all athletes,
// oldest first.
func (s *service) TeamSeries(ctx context.Context, teamID, metricName string) ([]model.AthleteSeriesPoint, error) {
	s.logger.Debugw("TeamSeries called", "team_id", teamID, "metric", metricName)

	if _, err := s.repo.GetTeamMetric(ctx, teamID, metricName); err != nil {
		return nil, err
	}

	performances, err := s.repo.ListForTeamMetric(ctx, teamID, metricName)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(performances))
	for _, p := range performances {
		ids = append(ids, p.AthleteID)
	}
	names, err := s.repo.ListUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	points := make([]model.AthleteSeriesPoint, 0, len(performances))
	for i := len(performances) - 1; i >= 0; i-- {
		p := performances[i]
		points = append(points, model.AthleteSeriesPoint{
			Date:    p.RecordedAt.Format(SeriesDateLayout),
			Athlete: names[p.AthleteID],
			Value:   p.Value,
		})
	}

	return points, nil
}

// AthleteSeries returns the chart series of one team metric for one athlete,
// oldest first.
func (s *service) AthleteSeries(ctx context.Context, teamID, athleteID, metricName string) ([]model.SeriesPoint, error) {
	s.logger.Debugw("AthleteSeries called", "team_id", teamID, "athlete_id", athleteID, "metric", metricName)

	performances, err := s.repo.ListAthleteMetric(ctx, teamID, athleteID, metricName)
	if err != nil {
		return nil, err
	}

	points := make([]model.SeriesPoint, 0, len(performances))
	for _, p := range performances {
		points = append(points, model.SeriesPoint{
			Date:  p.RecordedAt.Format(SeriesDateLayout),
			Value: p.Value,
		})
	}

	return points, nil
}

// TeamAverages returns aggregate statistics per team metric with data.
func (s *service) TeamAverages(ctx context.Context, teamID string) (map[string]model.MetricAverage, error) {
	s.logger.Debugw("TeamAverages called", "team_id", teamID)

	metrics, err := s.repo.ListTeamMetrics(ctx, teamID)
	if err != nil {
		return nil, err
	}

	performances, err := s.repo.ListForTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	values := make(map[string][]float64)
	for _, p := range performances {
		values[p.MetricName] = append(values[p.MetricName], p.Value)
	}

	averages := make(map[string]model.MetricAverage)
	for _, m := range metrics {
		vals := values[m.Name]
		if len(vals) == 0 {
			continue
		}
		sum, low, high := 0.0, vals[0], vals[0]
		for _, v := range vals {
			sum += v
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
		averages[m.Name] = model.MetricAverage{
			Average: math.Round(sum/float64(len(vals))*100) / 100,
			Min:     low,
			Max:     high,
			Unit:    m.Unit,
		}
	}

	return averages, nil
}

// Milestones returns the significant changes in an athlete's history.
// A milestone is a change of at least MilestoneThresholdPct between two
// consecutive records of the same metric. Records with a zero previous
// value are skipped to avoid dividing by zero.
func (s *service) Milestones(ctx context.Context, athleteID string) ([]model.Milestone, error) {
	s.logger.Debugw("Milestones called", "athlete_id", athleteID)

	performances, err := s.repo.ListForAthlete(ctx, athleteID, "", false)
	if err != nil {
		return nil, err
	}

	// group per metric, oldest first
	byMetric := make(map[string][]model.Performance)
	for i := len(performances) - 1; i >= 0; i-- {
		p := performances[i]
		byMetric[p.MetricName] = append(byMetric[p.MetricName], p)
	}

	milestones := []model.Milestone{}
	for _, series := range byMetric {
		for i := 1; i < len(series); i++ {
			prev, curr := series[i-1], series[i]
			if prev.Value == 0 {
				continue
			}
			change := (curr.Value - prev.Value) / prev.Value * 100
			if math.Abs(change) >= MilestoneThresholdPct {
				milestones = append(milestones, model.Milestone{
					Date:      curr.RecordedAt,
					Metric:    curr.MetricName,
					OldValue:  prev.Value,
					NewValue:  curr.Value,
					ChangePct: math.Round(change*10) / 10,
				})
			}
		}
	}

	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].Date.After(milestones[j].Date)
	})

	return milestones, nil
}

// Compare returns each roster athlete's latest value for a team metric,
// best value first.
func (s *service) Compare(ctx context.Context, teamID, metricName string) ([]model.ComparisonEntry, error) {
	s.logger.Debugw("Compare called", "team_id", teamID, "metric", metricName)

	if _, err := s.repo.GetTeamMetric(ctx, teamID, metricName); err != nil {
		return nil, err
	}

	performances, err := s.repo.ListForTeamMetric(ctx, teamID, metricName)
	if err != nil {
		return nil, err
	}

	// rows come newest first, so the first row seen per athlete is the latest
	latest := make(map[string]model.Performance)
	order := []string{}
	for _, p := range performances {
		if _, seen := latest[p.AthleteID]; !seen {
			latest[p.AthleteID] = p
			order = append(order, p.AthleteID)
		}
	}

	names, err := s.repo.ListUsernames(ctx, order)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ComparisonEntry, 0, len(order))
	for _, id := range order {
		p := latest[id]
		entries = append(entries, model.ComparisonEntry{
			AthleteID: id,
			Athlete:   names[id],
			Value:     p.Value,
			Date:      p.RecordedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return entries, nil
}

// Report generates a team performance or athlete comparison report.
func (s *service) Report(ctx context.Context, req *model.ReportRequest) (*model.ReportResponse, error) {
	s.logger.Debugw("Report called", "team_id", req.TeamID, "type", req.ReportType)

	if req.ReportType != model.ReportTeamPerformance && req.ReportType != model.ReportAthleteComparison {
		return nil, model.ErrInvalidReportType
	}

	exists, err := s.repo.TeamExists(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrTeamNotFound
	}

	to := time.Now()
	if req.DateTo != nil {
		to = *req.DateTo
	}
	from := to.AddDate(0, -1, 0)
	if req.DateFrom != nil {
		from = *req.DateFrom
	}

	resp := &model.ReportResponse{
		TeamID:     req.TeamID,
		ReportType: req.ReportType,
		DateFrom:   from,
		DateTo:     to,
	}

	performances, err := s.repo.ListForTeamInRange(ctx, req.TeamID, from, to)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(performances))
	for _, p := range performances {
		ids = append(ids, p.AthleteID)
	}
	names, err := s.repo.ListUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	switch req.ReportType {
	case model.ReportTeamPerformance:
		rows := make([]model.ReportRow, 0, len(performances))
		for _, p := range performances {
			rows = append(rows, model.ReportRow{
				Date:    p.RecordedAt.Format(SeriesDateLayout),
				Athlete: names[p.AthleteID],
				Metric:  p.MetricName,
				Value:   p.Value,
				Notes:   p.Notes,
			})
		}
		resp.Rows = rows

	case model.ReportAthleteComparison:
		comparison := make(map[string]map[string]float64)
		// rows come oldest first, so later rows overwrite with the latest value
		for _, p := range performances {
			if comparison[p.MetricName] == nil {
				comparison[p.MetricName] = make(map[string]float64)
			}
			comparison[p.MetricName][names[p.AthleteID]] = p.Value
		}
		resp.Comparison = comparison
	}

	s.logger.Infow("report generated", "team_id", req.TeamID, "type", req.ReportType)
	return resp, nil
}

// Package service implements the athlete evaluation engine. An evaluation
// reads a snapshot of team, roster and performance data and produces a
// composite 0-100 score with per-metric detail, strengths, weaknesses and
// recommendations. The engine performs no writes and keeps no state between
// calls, so it is safe to invoke concurrently.
package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/evaluation/model"
	"github.com/coachlab/evaluator/internal/evaluation/repository"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// Thresholds classifying a metric's raw score as a strength or a weakness.
const (
	StrengthThreshold = 75.0
	WeaknessThreshold = 40.0
)

// MaxRecommendations caps the advisory list.
const MaxRecommendations = 3

// Service defines the interface for evaluation operations.
type Service interface {
	// Evaluate scores an athlete across their teams. With teamID set the
	// evaluation is scoped to that single team.
	Evaluate(ctx context.Context, athleteID, teamID string) (*model.Result, error)
}

type service struct {
	repo    repository.Repository
	weights RoleWeights
	logger  *zap.SugaredLogger
}

// New creates an evaluation service with the default role weighting table.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return NewWithWeights(repo, DefaultRoleWeights(), logger)
}

// NewWithWeights creates an evaluation service with a custom role weighting
// table, so new roles or sports can be supported without code changes.
func NewWithWeights(repo repository.Repository, weights RoleWeights, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, weights: weights, logger: logger}
}

// Evaluate scores an athlete across their teams.
func (s *service) Evaluate(ctx context.Context, athleteID, teamID string) (*model.Result, error) {
	s.logger.Debugw("Evaluate called", "athlete_id", athleteID, "team_id", teamID)

	username, err := s.repo.GetAthleteUsername(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	teamIDs, err := s.resolveTeams(ctx, athleteID, teamID)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		AthleteID:       athleteID,
		Athlete:         username,
		Recommendations: []string{},
		Metrics:         map[string]model.MetricScore{},
		Strengths:       []string{},
		Weaknesses:      []string{},
		TeamScores:      map[string]float64{},
		GeneratedAt:     time.Now(),
	}

	if len(teamIDs) == 0 {
		result.Summary = model.SummaryNoTeams
		result.Recommendations = []string{model.RecommendationNoTeams}
		return result, nil
	}

	roles := make(map[string]string, len(teamIDs))
	catalogs := make(map[string]map[string]teamModel.Metric, len(teamIDs))
	for _, id := range teamIDs {
		role, err := s.repo.GetMemberRole(ctx, id, athleteID)
		if err != nil {
			return nil, err
		}
		roles[id] = role

		metrics, err := s.repo.ListTeamMetrics(ctx, id)
		if err != nil {
			return nil, err
		}
		catalog := make(map[string]teamModel.Metric, len(metrics))
		for _, m := range metrics {
			catalog[m.Name] = m
		}
		catalogs[id] = catalog
	}

	performances, err := s.repo.ListAthleteTeamPerformances(ctx, athleteID, teamIDs)
	if err != nil {
		return nil, err
	}

	teamTotals := make(map[string]float64)
	teamCounts := make(map[string]int)

	var weightedScores []float64
	for _, name := range sortedMetricNames(performances) {
		records := recordsForMetric(performances, name)
		latest := records[0]
		memberTeamID := *latest.TeamID

		percentile, err := s.metricPercentile(ctx, memberTeamID, name, athleteID)
		if err != nil {
			return nil, err
		}

		minValue, maxValue, unit := 0.0, 0.0, ""
		if def, ok := catalogs[memberTeamID][name]; ok {
			minValue, maxValue, unit = def.MinValue, def.MaxValue, def.Unit
		}
		if maxValue <= minValue && (higherIsBetter[name] || lowerIsBetter[name]) {
			s.logger.Warnw("degenerate metric bounds, falling back to percentile",
				"team_id", memberTeamID, "metric", name, "min", minValue, "max", maxValue)
		}

		raw := rawScore(name, latest.Value, minValue, maxValue, percentile)
		weight := s.weights.WeightFor(roles[memberTeamID], name)
		weighted := raw * weight

		result.Metrics[name] = model.MetricScore{
			Value:         latest.Value,
			RawScore:      raw,
			Weight:        weight,
			WeightedScore: weighted,
			Unit:          unit,
			Percentile:    percentile,
			Trend:         metricTrend(records),
			TeamID:        memberTeamID,
		}

		s.classify(result, name, raw)
		weightedScores = append(weightedScores, weighted)
		teamTotals[memberTeamID] += weighted
		teamCounts[memberTeamID]++
	}

	if err := s.scoreCustomMetrics(ctx, athleteID, result, &weightedScores); err != nil {
		return nil, err
	}

	result.Score = overallScore(weightedScores)
	result.Summary = summaryForScore(result.Score)
	result.Recommendations = recommendations(result.Weaknesses)

	for id, total := range teamTotals {
		result.TeamScores[id] = math.Round(total/float64(teamCounts[id])*100) / 100
	}

	s.logger.Infow("evaluation completed",
		"athlete_id", athleteID, "score", result.Score, "metrics", len(result.Metrics))
	return result, nil
}

// resolveTeams returns the candidate team set: the single requested team, or
// every team whose roster contains the athlete.
func (s *service) resolveTeams(ctx context.Context, athleteID, teamID string) ([]string, error) {
	if teamID != "" {
		exists, err := s.repo.TeamExists(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrTeamNotFound
		}
		return []string{teamID}, nil
	}
	return s.repo.ListTeamIDsForAthlete(ctx, athleteID)
}

func (s *service) metricPercentile(ctx context.Context, teamID, metricName, athleteID string) (*float64, error) {
	records, err := s.repo.ListMetricPerformances(ctx, teamID, metricName)
	if err != nil {
		return nil, err
	}
	return percentileRank(records, athleteID), nil
}

// scoreCustomMetrics folds the athlete's own metrics into the result,
// skipping names already scored from team data. Custom metrics use their own
// bounds and declared weight; with no teammates to rank against there is no
// percentile, so a degenerate range scores the default.
func (s *service) scoreCustomMetrics(ctx context.Context, athleteID string, result *model.Result, weightedScores *[]float64) error {
	defs, err := s.repo.ListCustomMetrics(ctx, athleteID)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return nil
	}

	customRecords, err := s.repo.ListCustomPerformances(ctx, athleteID)
	if err != nil {
		return err
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	for _, def := range defs {
		if _, scored := result.Metrics[def.Name]; scored {
			continue
		}
		records := recordsForMetric(customRecords, def.Name)
		if len(records) == 0 {
			continue
		}
		latest := records[0]

		raw := customRawScore(def, latest.Value)
		weighted := raw * def.Weight

		result.Metrics[def.Name] = model.MetricScore{
			Value:         latest.Value,
			RawScore:      raw,
			Weight:        def.Weight,
			WeightedScore: weighted,
			Unit:          def.Unit,
			Trend:         metricTrend(records),
		}

		s.classify(result, def.Name, raw)
		*weightedScores = append(*weightedScores, weighted)
	}

	return nil
}

// customRawScore normalizes against the metric's own bounds. Custom metrics
// default to higher-is-better unless the name is a known lower-is-better one.
func customRawScore(def performanceModel.CustomMetric, value float64) float64 {
	if def.MaxValue > def.MinValue {
		if lowerIsBetter[def.Name] {
			return clamp((def.MaxValue-value)/(def.MaxValue-def.MinValue)*100, 0, 100)
		}
		return clamp((value-def.MinValue)/(def.MaxValue-def.MinValue)*100, 0, 100)
	}
	return defaultRawScore
}

func (s *service) classify(result *model.Result, metricName string, raw float64) {
	switch {
	case raw >= StrengthThreshold:
		result.Strengths = append(result.Strengths, metricName)
	case raw <= WeaknessThreshold:
		result.Weaknesses = append(result.Weaknesses, metricName)
	}
}

// sortedMetricNames returns the distinct metric names in the rows, sorted so
// evaluation output is deterministic.
func sortedMetricNames(performances []performanceModel.Performance) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, p := range performances {
		if !seen[p.MetricName] {
			seen[p.MetricName] = true
			names = append(names, p.MetricName)
		}
	}
	sort.Strings(names)
	return names
}

// recordsForMetric filters rows to one metric, preserving newest-first order.
func recordsForMetric(performances []performanceModel.Performance, name string) []performanceModel.Performance {
	records := []performanceModel.Performance{}
	for _, p := range performances {
		if p.MetricName == name {
			records = append(records, p)
		}
	}
	return records
}

// metricTrend compares the newest record against the oldest. Records must be
// ordered newest first.
func metricTrend(records []performanceModel.Performance) string {
	if len(records) >= 2 && records[0].Value > records[len(records)-1].Value {
		return model.TrendImproving
	}
	return model.TrendStable
}

// overallScore is the rounded mean of the weighted scores, 0 with no metrics.
func overallScore(weightedScores []float64) int {
	if len(weightedScores) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range weightedScores {
		sum += w
	}
	return int(math.Round(sum / float64(len(weightedScores))))
}

func summaryForScore(score int) string {
	switch {
	case score >= 85:
		return model.SummaryOutstanding
	case score >= 70:
		return model.SummaryStrong
	case score >= 50:
		return model.SummaryAverage
	case score >= 30:
		return model.SummaryBelowAverage
	default:
		return model.SummaryPoor
	}
}

// recommendationTexts maps weakness metrics to advisory strings.
var recommendationTexts = map[string]string{
	"batting_average":   "Focus on batting technique and consistency in the nets",
	"bowling_average":   "Work on bowling accuracy and line-and-length control",
	"economy_rate":      "Work on bowling accuracy and line-and-length control",
	"bowling_speed":     "Build bowling pace through strength and conditioning",
	"strike_rate":       "Practice aggressive batting and shot selection",
	"fielding_accuracy": "Increase fielding drills and catching practice",
}

// recommendations maps each weakness to its advisory text, capped at
// MaxRecommendations.
func recommendations(weaknesses []string) []string {
	recs := []string{}
	for _, name := range weaknesses {
		if len(recs) == MaxRecommendations {
			break
		}
		if text, ok := recommendationTexts[name]; ok {
			recs = append(recs, text)
			continue
		}
		recs = append(recs, "Improve "+strings.ReplaceAll(name, "_", " "))
	}
	return recs
}

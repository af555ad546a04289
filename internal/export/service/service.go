// Package service builds spreadsheet exports of team and athlete data. Each
// workbook carries the raw performance rows plus an evaluation summary sheet
// produced by the evaluation engine.
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	evaluationService "github.com/coachlab/evaluator/internal/evaluation/service"
	performanceService "github.com/coachlab/evaluator/internal/performance/service"
	teamService "github.com/coachlab/evaluator/internal/team/service"
)

// exportDateLayout formats timestamps in exported rows.
const exportDateLayout = "2006-01-02 15:04"

var performanceHeader = []string{"Date", "Athlete", "Metric", "Value", "Notes"}

// Service defines the interface for export operations.
type Service interface {
	// TeamWorkbook builds an xlsx with the team's performance rows and an
	// evaluation summary per roster athlete.
	TeamWorkbook(ctx context.Context, teamID string) ([]byte, error)

	// TeamCSV builds the team's performance rows as CSV.
	TeamCSV(ctx context.Context, teamID string) ([]byte, error)

	// AthleteWorkbook builds an xlsx with the athlete's history and their
	// evaluation summary.
	AthleteWorkbook(ctx context.Context, athleteID string) ([]byte, error)

	// AthleteCSV builds the athlete's history as CSV.
	AthleteCSV(ctx context.Context, athleteID string) ([]byte, error)
}

type service struct {
	teams        teamService.Service
	performances performanceService.Service
	evaluations  evaluationService.Service
	logger       *zap.SugaredLogger
}

// New creates a new export service instance.
func New(
	teams teamService.Service,
	performances performanceService.Service,
	evaluations evaluationService.Service,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		teams:        teams,
		performances: performances,
		evaluations:  evaluations,
		logger:       logger,
	}
}

// TeamWorkbook builds an xlsx with the team's performance rows and an
// evaluation summary per roster athlete.
func (s *service) TeamWorkbook(ctx context.Context, teamID string) ([]byte, error) {
	s.logger.Debugw("TeamWorkbook called", "team_id", teamID)

	rows, summaries, err := s.teamSheets(ctx, teamID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "Performances", performanceHeader, rows, true); err != nil {
		return nil, err
	}
	summaryHeader := []string{"Athlete", "Role", "Score", "Summary", "Strengths", "Weaknesses"}
	if err := writeSheet(f, "Summary", summaryHeader, summaries, false); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Errorw("TeamWorkbook write failed", "team_id", teamID, "error", err)
		return nil, err
	}

	s.logger.Infow("team workbook exported", "team_id", teamID, "rows", len(rows))
	return buf.Bytes(), nil
}

// TeamCSV builds the team's performance rows as CSV.
func (s *service) TeamCSV(ctx context.Context, teamID string) ([]byte, error) {
	s.logger.Debugw("TeamCSV called", "team_id", teamID)

	rows, _, err := s.teamSheets(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return writeCSV(performanceHeader, rows)
}

// AthleteWorkbook builds an xlsx with the athlete's history and their
// evaluation summary.
func (s *service) AthleteWorkbook(ctx context.Context, athleteID string) ([]byte, error) {
	s.logger.Debugw("AthleteWorkbook called", "athlete_id", athleteID)

	rows, err := s.athleteRows(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluations.Evaluate(ctx, athleteID, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	historyHeader := []string{"Date", "Metric", "Value", "Notes"}
	if err := writeSheet(f, "History", historyHeader, rows, true); err != nil {
		return nil, err
	}

	evaluation := [][]string{
		{"Athlete", result.Athlete},
		{"Score", strconv.Itoa(result.Score)},
		{"Summary", result.Summary},
		{"Strengths", strings.Join(result.Strengths, ", ")},
		{"Weaknesses", strings.Join(result.Weaknesses, ", ")},
		{"Recommendations", strings.Join(result.Recommendations, "; ")},
	}
	if err := writeSheet(f, "Evaluation", nil, evaluation, false); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Errorw("AthleteWorkbook write failed", "athlete_id", athleteID, "error", err)
		return nil, err
	}

	s.logger.Infow("athlete workbook exported", "athlete_id", athleteID, "rows", len(rows))
	return buf.Bytes(), nil
}

// AthleteCSV builds the athlete's history as CSV.
func (s *service) AthleteCSV(ctx context.Context, athleteID string) ([]byte, error) {
	s.logger.Debugw("AthleteCSV called", "athlete_id", athleteID)

	rows, err := s.athleteRows(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return writeCSV([]string{"Date", "Metric", "Value", "Notes"}, rows)
}

// teamSheets gathers the performance rows and per-athlete evaluation
// summaries for one team.
func (s *service) teamSheets(ctx context.Context, teamID string) ([][]string, [][]string, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	names := make(map[string]string, len(team.Members))
	for _, m := range team.Members {
		names[m.AthleteID] = m.Username
	}

	performances, err := s.performances.ListTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, 0, len(performances))
	for _, p := range performances {
		rows = append(rows, []string{
			p.RecordedAt.Format(exportDateLayout),
			names[p.AthleteID],
			p.MetricName,
			formatValue(p.Value),
			p.Notes,
		})
	}

	summaries := make([][]string, 0, len(team.Members))
	for _, m := range team.Members {
		result, err := s.evaluations.Evaluate(ctx, m.AthleteID, teamID)
		if err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, []string{
			m.Username,
			m.Role,
			strconv.Itoa(result.Score),
			result.Summary,
			strings.Join(result.Strengths, ", "),
			strings.Join(result.Weaknesses, ", "),
		})
	}

	return rows, summaries, nil
}

func (s *service) athleteRows(ctx context.Context, athleteID string) ([][]string, error) {
	performances, err := s.performances.ListAthlete(ctx, athleteID, "")
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(performances))
	for _, p := range performances {
		rows = append(rows, []string{
			p.RecordedAt.Format(exportDateLayout),
			p.MetricName,
			formatValue(p.Value),
			p.Notes,
		})
	}

	return rows, nil
}

// writeSheet fills one sheet of the workbook. The first sheet replaces the
// default one excelize creates.
func writeSheet(f *excelize.File, name string, header []string, rows [][]string, first bool) error {
	if first {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	rowIndex := 1
	if header != nil {
		if err := writeRow(f, name, rowIndex, header); err != nil {
			return err
		}
		rowIndex++
	}
	for _, row := range rows {
		if err := writeRow(f, name, rowIndex, row); err != nil {
			return err
		}
		rowIndex++
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowIndex int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIndex)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}

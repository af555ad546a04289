// Package fixtures loads sample data for demos and local development: a
// coach with two cricket teams, a roster of athletes with roles, full metric
// catalogs and a few weeks of generated performance history.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "github.com/coachlab/evaluator/internal/auth/model"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// DefaultPassword is the password every seeded account gets.
const DefaultPassword = "password123"

// historyDays is how far back generated performance history reaches.
const historyDays = 60

// Seeder writes sample data through the gorm connection.
type Seeder struct {
	db     *gorm.DB
	rng    *rand.Rand
	logger *zap.SugaredLogger
}

// New creates a seeder. The random source is fixed so repeated runs against
// a fresh database produce the same data.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Seeder {
	return &Seeder{db: db, rng: rand.New(rand.NewSource(42)), logger: logger}
}

type sampleAthlete struct {
	username string
	role     string
}

// SeedAll loads the complete sample data set: one coach, two teams with
// cricket catalogs, rosters and performance history.
func (s *Seeder) SeedAll(ctx context.Context) error {
	coachID, err := s.seedUser(ctx, "coach_arjun", "arjun@example.com", authModel.RoleCoach)
	if err != nil {
		return err
	}

	teams := []struct {
		name     string
		athletes []sampleAthlete
	}{
		{
			name: "Mumbai Strikers",
			athletes: []sampleAthlete{
				{"rohit_b", teamModel.RoleBatsman},
				{"jasprit_w", teamModel.RoleBowler},
				{"hardik_a", teamModel.RoleAllRounder},
				{"rishabh_k", teamModel.RoleWicketKeeper},
			},
		},
		{
			name: "Delhi Daredevils",
			athletes: []sampleAthlete{
				{"virat_c", teamModel.RoleCaptain},
				{"ishant_f", teamModel.RoleBowler},
				{"shreyas_m", teamModel.RoleBatsman},
			},
		},
	}

	for _, t := range teams {
		teamID, err := s.seedTeam(ctx, coachID, t.name)
		if err != nil {
			return err
		}
		if err := s.SeedCatalog(ctx, teamID); err != nil {
			return err
		}
		for _, a := range t.athletes {
			athleteID, err := s.seedUser(ctx, a.username, a.username+"@example.com", authModel.RoleAthlete)
			if err != nil {
				return err
			}
			if err := s.seedMember(ctx, teamID, athleteID, a.role); err != nil {
				return err
			}
			if err := s.seedHistory(ctx, teamID, athleteID, coachID, a.role); err != nil {
				return err
			}
		}
	}

	s.logger.Infow("sample data loaded", "teams", len(teams))
	return nil
}

// SeedCatalog loads the standard cricket metric catalog into a team.
func (s *Seeder) SeedCatalog(ctx context.Context, teamID string) error {
	for _, def := range teamModel.CricketMetricDefs() {
		metric := teamModel.Metric{
			TeamID:      teamID,
			Name:        def.Name,
			Description: def.Description,
			Unit:        def.Unit,
			MinValue:    def.MinValue,
			MaxValue:    def.MaxValue,
		}
		err := s.db.WithContext(ctx).
			Where("team_id = ? AND name = ?", teamID, def.Name).
			FirstOrCreate(&metric).Error
		if err != nil {
			return fmt.Errorf("seed catalog %s: %w", def.Name, err)
		}
	}

	s.logger.Infow("catalog loaded", "team_id", teamID)
	return nil
}

func (s *Seeder) seedUser(ctx context.Context, username, email, role string) (string, error) {
	var existing []string
	err := s.db.WithContext(ctx).
		Table("users").
		Where("email = ?", email).
		Limit(1).
		Pluck("user_id", &existing).Error
	if err != nil {
		return "", fmt.Errorf("seed user %s: %w", username, err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("seed user %s: %w", username, err)
	}

	user := authModel.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", fmt.Errorf("seed user %s: %w", username, err)
	}

	return user.UserID, nil
}

func (s *Seeder) seedTeam(ctx context.Context, coachID, name string) (string, error) {
	var existing []string
	err := s.db.WithContext(ctx).
		Table("teams").
		Where("coach_id = ? AND name = ?", coachID, name).
		Limit(1).
		Pluck("team_id", &existing).Error
	if err != nil {
		return "", fmt.Errorf("seed team %s: %w", name, err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	team := teamModel.Team{
		TeamID:      uuid.NewString(),
		Name:        name,
		CoachID:     coachID,
		Sport:       "cricket",
		Description: "Sample team",
		CreatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&team).Error; err != nil {
		return "", fmt.Errorf("seed team %s: %w", name, err)
	}

	return team.TeamID, nil
}

func (s *Seeder) seedMember(ctx context.Context, teamID, athleteID, role string) error {
	member := teamModel.Member{
		TeamID:    teamID,
		AthleteID: athleteID,
		Role:      role,
		AddedAt:   time.Now(),
	}
	err := s.db.WithContext(ctx).
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		FirstOrCreate(&member).Error
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	return nil
}

// seedHistory generates weekly observations for the metrics the athlete's
// role weighs most, drifting upward so trends read as improving.
func (s *Seeder) seedHistory(ctx context.Context, teamID, athleteID, coachID, role string) error {
	metrics := historyMetrics(role)

	for _, name := range metrics {
		def, ok := metricDef(name)
		if !ok {
			continue
		}
		base := def.MinValue + (def.MaxValue-def.MinValue)*(0.3+0.3*s.rng.Float64())
		step := (def.MaxValue - def.MinValue) * 0.04

		for day := historyDays; day >= 0; day -= 7 {
			value := base + step*float64(historyDays-day)/7
			value += (s.rng.Float64() - 0.5) * step
			if value < def.MinValue {
				value = def.MinValue
			}
			if value > def.MaxValue {
				value = def.MaxValue
			}

			p := performanceModel.Performance{
				AthleteID:  athleteID,
				TeamID:     &teamID,
				MetricName: name,
				Value:      float64(int(value*100)) / 100,
				RecordedBy: coachID,
				Notes:      "Seeded observation",
				RecordedAt: time.Now().AddDate(0, 0, -day),
			}
			if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
				return fmt.Errorf("seed history %s: %w", name, err)
			}
		}
	}

	return nil
}

func historyMetrics(role string) []string {
	switch role {
	case teamModel.RoleBatsman:
		return []string{"batting_average", "strike_rate", "runs_scored", "boundaries"}
	case teamModel.RoleBowler:
		return []string{"bowling_average", "economy_rate", "wickets_taken", "bowling_speed"}
	case teamModel.RoleAllRounder:
		return []string{"batting_average", "bowling_average", "strike_rate", "wickets_taken"}
	case teamModel.RoleWicketKeeper:
		return []string{"catches_taken", "batting_average", "strike_rate"}
	default:
		return []string{"batting_average", "strike_rate", "fielding_accuracy"}
	}
}

func metricDef(name string) (teamModel.MetricDef, bool) {
	for _, def := range teamModel.CricketMetricDefs() {
		if def.Name == name {
			return def, true
		}
	}
	return teamModel.MetricDef{}, false
}

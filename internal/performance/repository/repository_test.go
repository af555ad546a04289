package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authModel "github.com/coachlab/evaluator/internal/auth/model"
	"github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Set max open connections to 1 for in-memory SQLite
	// This ensures all operations use the same connection and see the same database state
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&authModel.User{},
		&teamModel.Team{},
		&teamModel.Metric{},
		&teamModel.Member{},
		&model.Performance{},
		&model.CustomMetric{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username, role string) {
	require.NoError(t, db.Create(&authModel.User{
		UserID:       id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    time.Now(),
	}).Error)
}

func seedTeam(t *testing.T, db *gorm.DB, teamID, coachID string) {
	require.NoError(t, db.Create(&teamModel.Team{
		TeamID:    teamID,
		Name:      "Team " + teamID,
		CoachID:   coachID,
		Sport:     "cricket",
		CreatedAt: time.Now(),
	}).Error)
}

func seedPerformance(t *testing.T, db *gorm.DB, athleteID string, teamID *string, metric string, value float64, recordedAt time.Time) {
	require.NoError(t, db.Create(&model.Performance{
		AthleteID:  athleteID,
		TeamID:     teamID,
		MetricName: metric,
		Value:      value,
		RecordedBy: "coach1",
		RecordedAt: recordedAt,
	}).Error)
}

func strPtr(s string) *string { return &s }

func TestRepository_TeamExists(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	seedTeam(t, db, "t1", "coach1")

	exists, err := repo.TeamExists(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.TeamExists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetTeamMetric(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, db.Create(&teamModel.Metric{
		TeamID: "t1", Name: "runs_scored", Unit: "runs", MinValue: 0, MaxValue: 300,
	}).Error)

	metric, err := repo.GetTeamMetric(ctx, "t1", "runs_scored")
	require.NoError(t, err)
	assert.Equal(t, 300.0, metric.MaxValue)

	_, err = repo.GetTeamMetric(ctx, "t1", "unknown")
	assert.ErrorIs(t, err, model.ErrMetricNotFound)
}

func TestRepository_IsMember(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, db.Create(&teamModel.Member{
		TeamID: "t1", AthleteID: "a1", Role: "batsman", AddedAt: time.Now(),
	}).Error)

	member, err := repo.IsMember(ctx, "t1", "a1")
	require.NoError(t, err)
	assert.True(t, member)

	member, err = repo.IsMember(ctx, "t1", "a2")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestRepository_AthleteExists_RejectsCoaches(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	seedUser(t, db, "a1", "rohit", "athlete")
	seedUser(t, db, "c1", "arjun", "coach")

	exists, err := repo.AthleteExists(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.AthleteExists(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_ListUsernames(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	seedUser(t, db, "a1", "rohit", "athlete")
	seedUser(t, db, "a2", "virat", "athlete")

	names, err := repo.ListUsernames(ctx, []string{"a1", "a2", "a1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a1": "rohit", "a2": "virat"}, names)

	names, err = repo.ListUsernames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRepository_ListForAthlete(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 50, now.AddDate(0, 0, -2))
	seedPerformance(t, db, "a1", strPtr("t2"), "runs_scored", 70, now.AddDate(0, 0, -1))
	seedPerformance(t, db, "a1", nil, "sprint_speed", 9.5, now)
	seedPerformance(t, db, "a2", strPtr("t1"), "runs_scored", 30, now)

	t.Run("all rows newest first", func(t *testing.T) {
		rows, err := repo.ListForAthlete(ctx, "a1", "", false)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "sprint_speed", rows[0].MetricName)
		assert.Equal(t, 70.0, rows[1].Value)
		assert.Equal(t, 50.0, rows[2].Value)
	})

	t.Run("team filter", func(t *testing.T) {
		rows, err := repo.ListForAthlete(ctx, "a1", "t2", false)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 70.0, rows[0].Value)
	})

	t.Run("team rows only", func(t *testing.T) {
		rows, err := repo.ListForAthlete(ctx, "a1", "", true)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		for _, row := range rows {
			assert.NotNil(t, row.TeamID)
		}
	})

	t.Run("no rows returns empty slice", func(t *testing.T) {
		rows, err := repo.ListForAthlete(ctx, "nobody", "", false)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestRepository_ListForTeamMetric_TiesResolveByID(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	recordedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// identical timestamps: the later insert must come first
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 50, recordedAt)
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 80, recordedAt)

	rows, err := repo.ListForTeamMetric(ctx, "t1", "runs_scored")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 80.0, rows[0].Value)
	assert.Equal(t, 50.0, rows[1].Value)
}

func TestRepository_ListForTeamInRange(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 10, from.AddDate(0, 0, -1))
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 20, from.AddDate(0, 0, 5))
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 30, from.AddDate(0, 0, 10))
	seedPerformance(t, db, "a1", strPtr("t1"), "runs_scored", 40, to.AddDate(0, 0, 1))

	rows, err := repo.ListForTeamInRange(ctx, "t1", from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// oldest first
	assert.Equal(t, 20.0, rows[0].Value)
	assert.Equal(t, 30.0, rows[1].Value)
}

func TestRepository_CreateCustomMetric(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	metric := &model.CustomMetric{
		AthleteID: "a1",
		Name:      "sprint_speed",
		Unit:      "m/s",
		MinValue:  0,
		MaxValue:  12,
		Weight:    1,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateCustomMetric(ctx, metric))

	// duplicate name for the same athlete is rejected
	err := repo.CreateCustomMetric(ctx, &model.CustomMetric{
		AthleteID: "a1",
		Name:      "sprint_speed",
		CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, model.ErrCustomMetricExists)

	// same name for another athlete is fine
	require.NoError(t, repo.CreateCustomMetric(ctx, &model.CustomMetric{
		AthleteID: "a2",
		Name:      "sprint_speed",
		CreatedAt: time.Now(),
	}))

	got, err := repo.GetCustomMetric(ctx, "a1", "sprint_speed")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.MaxValue)

	_, err = repo.GetCustomMetric(ctx, "a1", "unknown")
	assert.ErrorIs(t, err, model.ErrCustomMetricNotFound)
}

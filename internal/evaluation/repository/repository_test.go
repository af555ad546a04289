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
	"github.com/coachlab/evaluator/internal/evaluation/model"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
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
		&performanceModel.Performance{},
		&performanceModel.CustomMetric{},
	))

	return db
}

func seedAthlete(t *testing.T, db *gorm.DB, id, username string) {
	require.NoError(t, db.Create(&authModel.User{
		UserID:       id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         authModel.RoleAthlete,
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

func TestRepository_GetAthleteUsername(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedAthlete(t, db, "a1", "rohit")

	t.Run("found", func(t *testing.T) {
		username, err := repo.GetAthleteUsername(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "rohit", username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetAthleteUsername(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrAthleteNotFound)
	})

	t.Run("coach is not an athlete", func(t *testing.T) {
		require.NoError(t, db.Create(&authModel.User{
			UserID:       "c1",
			Username:     "coach",
			Email:        "coach@example.com",
			PasswordHash: "x",
			Role:         authModel.RoleCoach,
			CreatedAt:    time.Now(),
		}).Error)

		_, err := repo.GetAthleteUsername(ctx, "c1")
		assert.ErrorIs(t, err, model.ErrAthleteNotFound)
	})
}

func TestRepository_ListTeamIDsForAthlete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedAthlete(t, db, "a1", "rohit")
	seedTeam(t, db, "t1", "c1")
	seedTeam(t, db, "t2", "c1")

	require.NoError(t, db.Create(&teamModel.Member{
		TeamID: "t1", AthleteID: "a1", Role: "batsman", AddedAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&teamModel.Member{
		TeamID: "t2", AthleteID: "a1", AddedAt: time.Now(),
	}).Error)

	teamIDs, err := repo.ListTeamIDsForAthlete(ctx, "a1")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, teamIDs)

	empty, err := repo.ListTeamIDsForAthlete(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_GetMemberRole(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedAthlete(t, db, "a1", "rohit")
	seedTeam(t, db, "t1", "c1")
	require.NoError(t, db.Create(&teamModel.Member{
		TeamID: "t1", AthleteID: "a1", Role: "bowler", AddedAt: time.Now(),
	}).Error)

	role, err := repo.GetMemberRole(ctx, "t1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "bowler", role)

	role, err = repo.GetMemberRole(ctx, "t1", "stranger")
	require.NoError(t, err)
	assert.Equal(t, "", role)
}

func TestRepository_ListAthleteTeamPerformances(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	teamID := "t1"
	now := time.Now()

	rows := []performanceModel.Performance{
		{AthleteID: "a1", TeamID: &teamID, MetricName: "batting_average", Value: 40, RecordedBy: "c1", RecordedAt: now.Add(-48 * time.Hour)},
		{AthleteID: "a1", TeamID: &teamID, MetricName: "batting_average", Value: 55, RecordedBy: "c1", RecordedAt: now},
		{AthleteID: "a1", MetricName: "sprint_speed", Value: 30, RecordedBy: "a1", RecordedAt: now},
		{AthleteID: "a2", TeamID: &teamID, MetricName: "batting_average", Value: 70, RecordedBy: "c1", RecordedAt: now},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	t.Run("excludes custom rows and other athletes", func(t *testing.T) {
		got, err := repo.ListAthleteTeamPerformances(ctx, "a1", []string{"t1"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 55.0, got[0].Value)
		assert.Equal(t, 40.0, got[1].Value)
	})

	t.Run("empty team set", func(t *testing.T) {
		got, err := repo.ListAthleteTeamPerformances(ctx, "a1", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("custom rows only via ListCustomPerformances", func(t *testing.T) {
		got, err := repo.ListCustomPerformances(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "sprint_speed", got[0].MetricName)
	})
}

func TestRepository_ListMetricPerformances(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	teamID := "t1"
	now := time.Now()

	rows := []performanceModel.Performance{
		{AthleteID: "a1", TeamID: &teamID, MetricName: "runs_scored", Value: 80, RecordedBy: "c1", RecordedAt: now.Add(-time.Hour)},
		{AthleteID: "a2", TeamID: &teamID, MetricName: "runs_scored", Value: 120, RecordedBy: "c1", RecordedAt: now},
		{AthleteID: "a1", TeamID: &teamID, MetricName: "strike_rate", Value: 130, RecordedBy: "c1", RecordedAt: now},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	got, err := repo.ListMetricPerformances(ctx, "t1", "runs_scored")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 120.0, got[0].Value)
	assert.Equal(t, 80.0, got[1].Value)
}

func TestRepository_ListCustomMetrics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	require.NoError(t, db.Create(&performanceModel.CustomMetric{
		AthleteID: "a1", Name: "sprint_speed", Unit: "m/s", MinValue: 0, MaxValue: 12, Weight: 2, CreatedAt: time.Now(),
	}).Error)

	got, err := repo.ListCustomMetrics(ctx, "a1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sprint_speed", got[0].Name)
	assert.Equal(t, 2.0, got[0].Weight)

	empty, err := repo.ListCustomMetrics(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

package model

import "time"

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	TeamID      string    `gorm:"primaryKey;column:team_id;type:varchar(36)"                          json:"team_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"                              json:"name"`
	CoachID     string    `gorm:"column:coach_id;type:varchar(36);not null;index:idx_teams_coach"     json:"coach_id"`
	Sport       string    `gorm:"column:sport;type:varchar(64);not null"                              json:"sport"`
	Description string    `gorm:"column:description;type:varchar(512)"                                json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"           json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// Metric represents one metric definition in a team's catalog.
// Matches the team_metrics table schema. Metric names are unique within a
// team but not globally; the same name can carry different bounds elsewhere.
type Metric struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement"                                             json:"-"`
	TeamID      string    `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:idx_team_metric,priority:1" json:"team_id"`
	Name        string    `gorm:"column:name;type:varchar(64);not null;uniqueIndex:idx_team_metric,priority:2"    json:"name"`
	Description string    `gorm:"column:description;type:varchar(512)"                                          json:"description,omitempty"`
	Unit        string    `gorm:"column:unit;type:varchar(32)"                                                  json:"unit"`
	MinValue    float64   `gorm:"column:min_value;not null;default:0"                                           json:"min_value"`
	MaxValue    float64   `gorm:"column:max_value;not null;default:100"                                         json:"max_value"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                     json:"-"`
}

// TableName specifies the table name for GORM.
func (Metric) TableName() string {
	return "team_metrics"
}

// Member represents an athlete's membership in a team.
// Matches the team_members table schema. Role may be empty: an athlete can
// be on the roster without an assigned role, which downstream consumers
// treat as an unknown role rather than an error.
type Member struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"                                              json:"-"`
	TeamID    string    `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:idx_team_member,priority:1" json:"team_id"`
	AthleteID string    `gorm:"column:athlete_id;type:varchar(36);not null;uniqueIndex:idx_team_member,priority:2" json:"athlete_id"`
	Role      string    `gorm:"column:role;type:varchar(32)"                                                    json:"role,omitempty"`
	AddedAt   time.Time `gorm:"column:added_at;type:timestamptz;not null;default:now()"                        json:"added_at"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}

// Roles assignable to team members.
const (
	RoleBatsman      = "batsman"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all_rounder"
	RoleWicketKeeper = "wicket_keeper"
	RoleCaptain      = "captain"
)

// ValidMemberRole reports whether role is assignable. The empty string is
// allowed and means the role is not set.
func ValidMemberRole(role string) bool {
	switch role {
	case "", RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper, RoleCaptain:
		return true
	}
	return false
}

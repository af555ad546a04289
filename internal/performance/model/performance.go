package model

import "time"

// Performance represents one recorded observation of a metric for an athlete.
// Matches the performances table schema. Rows are immutable once written.
// TeamID is nil for athlete-owned custom-metric records not tied to a team.
type Performance struct {
	ID         uint      `gorm:"primaryKey;column:id;autoIncrement"                                        json:"id"`
	AthleteID  string    `gorm:"column:athlete_id;type:varchar(36);not null;index:idx_performances_athlete" json:"athlete_id"`
	TeamID     *string   `gorm:"column:team_id;type:varchar(36);index:idx_performances_team"               json:"team_id,omitempty"`
	MetricName string    `gorm:"column:metric_name;type:varchar(64);not null;index:idx_performances_metric" json:"metric_name"`
	Value      float64   `gorm:"column:value;not null"                                                     json:"value"`
	RecordedBy string    `gorm:"column:recorded_by;type:varchar(36);not null"                              json:"recorded_by"`
	Notes      string    `gorm:"column:notes;type:varchar(512)"                                            json:"notes,omitempty"`
	RecordedAt time.Time `gorm:"column:recorded_at;type:timestamptz;not null;default:now()"                json:"recorded_at"`
}

// TableName specifies the table name for GORM.
func (Performance) TableName() string {
	return "performances"
}

// CustomMetric represents an athlete-owned metric definition with its own
// bounds and importance weight, independent of any team catalog.
// Matches the custom_metrics table schema.
type CustomMetric struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement"                                                  json:"-"`
	AthleteID   string    `gorm:"column:athlete_id;type:varchar(36);not null;uniqueIndex:idx_custom_metric,priority:1" json:"athlete_id"`
	Name        string    `gorm:"column:name;type:varchar(64);not null;uniqueIndex:idx_custom_metric,priority:2"       json:"name"`
	Description string    `gorm:"column:description;type:varchar(512)"                                               json:"description,omitempty"`
	Unit        string    `gorm:"column:unit;type:varchar(32)"                                                       json:"unit"`
	MinValue    float64   `gorm:"column:min_value;not null;default:0"                                                json:"min_value"`
	MaxValue    float64   `gorm:"column:max_value;not null;default:100"                                              json:"max_value"`
	Weight      float64   `gorm:"column:weight;not null;default:1"                                                   json:"weight"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                          json:"-"`
}

// TableName specifies the table name for GORM.
func (CustomMetric) TableName() string {
	return "custom_metrics"
}

package model

import "time"

// Notification types produced by other modules.
const (
	TypeTeamAddition      = "team_addition"
	TypePerformanceUpdate = "performance_update"
)

// DefaultListLimit bounds inbox queries unless the caller asks for more.
const DefaultListLimit = 10

// Notification represents a notification entity in the system.
// Matches the notifications table schema.
type Notification struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"                                        json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index:idx_notifications_user"     json:"user_id"`
	Message   string    `gorm:"column:message;type:varchar(512);not null"                                 json:"message"`
	Type      string    `gorm:"column:type;type:varchar(32);not null"                                     json:"type"`
	RelatedID string    `gorm:"column:related_id;type:varchar(36)"                                        json:"related_id,omitempty"`
	Read      bool      `gorm:"column:read;not null;default:false"                                        json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                 json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

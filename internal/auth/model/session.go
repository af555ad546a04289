package model

import "time"

// Session represents a server-side session entity.
// Matches the sessions table schema. The token is an opaque identifier
// handed to the client and presented back via the Authorization header.
type Session struct {
	Token     string    `gorm:"primaryKey;column:token;type:varchar(36)"                  json:"token"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index:idx_sessions_user" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null"               json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

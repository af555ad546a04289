package model

import "time"

// Role values accepted at registration.
const (
	RoleCoach   = "coach"
	RoleAthlete = "athlete"
)

// User represents a user entity in the system.
// Matches the users table schema. Coaches and athletes share the table
// and are distinguished by the Role column.
type User struct {
	UserID       string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                        json:"user_id"`
	Username     string    `gorm:"column:username;type:varchar(255);not null"                        json:"username"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"                   json:"-"`
	Role         string    `gorm:"column:role;type:varchar(16);not null;index:idx_users_role"        json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"         json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsCoach reports whether the user registered as a coach.
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// IsAthlete reports whether the user registered as an athlete.
func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// ValidRole reports whether role is one of the accepted registration roles.
func ValidRole(role string) bool {
	return role == RoleCoach || role == RoleAthlete
}

// Package model provides domain models and DTOs for notification module.
package model

// ListResponse represents the response for a user's notification inbox.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}

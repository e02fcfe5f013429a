package entity

import (
	"time"
)

// Channel is the aggregate root for the channel domain. Members and Admins
// hold user IDs; both are fixed at creation — no operation mutates membership
// afterward, so every channel keeps the admin it was created with.
type Channel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	Admins      []string  `json:"admins"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsAdmin reports whether the given user ID is in the channel's admin set.
func (c *Channel) IsAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

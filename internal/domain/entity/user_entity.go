package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash and is never serialized; persistence is the
// only place the hash may travel.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Channels  []string  `json:"channels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

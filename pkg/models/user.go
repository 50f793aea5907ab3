package models

import "time"

// User is one user record as the user store returns it. The store never
// sends credential material; password verification happens on its side.
type User struct {
	ID        int       `json:"id"`
	UserName  string    `json:"userName"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

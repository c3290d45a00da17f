package models

import "time"

// User represents a founder account in the system
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}

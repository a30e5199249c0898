package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // User email, not unique
	Name      string    `json:"name" db:"name"`             // Display name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the credential domain.
// PasswordHash holds a bcrypt hash, never the plaintext.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is owned by exactly one user, fixed at creation.
// CoverImagePath is empty until a cover is uploaded.
type Book struct {
	ID             uuid.UUID
	Title          string
	Author         string
	OwnerID        uuid.UUID
	CoverImagePath string
	CreatedAt      time.Time
}

// OwnedBy reports whether userID owns the book.
func (b *Book) OwnedBy(userID uuid.UUID) bool {
	return b != nil && userID != uuid.Nil && b.OwnerID == userID
}

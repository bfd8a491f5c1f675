package handlers

import (
	"time"

	"github.com/oksasatya/readlog/internal/domain/entity"
)

// userDTO never carries the password hash.
type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type bookDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	OwnerID        string    `json:"ownerId"`
	CoverImagePath string    `json:"coverImagePath,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type readingLogDTO struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserDTO(u *entity.User) userDTO {
	return userDTO{ID: u.ID.String(), Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toBookDTO(b *entity.Book) bookDTO {
	return bookDTO{
		ID:             b.ID.String(),
		Title:          b.Title,
		Author:         b.Author,
		OwnerID:        b.OwnerID.String(),
		CoverImagePath: b.CoverImagePath,
		CreatedAt:      b.CreatedAt,
	}
}

func toReadingLogDTO(l *entity.ReadingLog) readingLogDTO {
	return readingLogDTO{
		ID:        l.ID.String(),
		BookID:    l.BookID.String(),
		Date:      l.Date.Format(entity.DateLayout),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}

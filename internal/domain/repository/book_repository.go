package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/readlog/internal/domain/entity"
)

// BookRepository persists books.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	SetCoverImage(ctx context.Context, id uuid.UUID, path string) (*entity.Book, error)
	List(ctx context.Context, offset, limit int) ([]entity.Book, error)
}

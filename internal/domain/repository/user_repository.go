package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/readlog/internal/domain/entity"
)

// UserRepository defines the credential store.
// Create assigns ID and CreatedAt and must enforce email uniqueness itself.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, offset, limit int) ([]entity.User, error)
}

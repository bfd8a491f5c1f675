package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/oksasatya/readlog/internal/domain/entity"
	repo "github.com/oksasatya/readlog/internal/domain/repository"
)

// authorizeBookOwner re-reads the book on every call and checks it belongs to callerID.
// A missing book is ErrBookNotFound; a book under another owner is ErrForbidden.
func authorizeBookOwner(ctx context.Context, books repo.BookRepository, bookID, callerID uuid.UUID) (*entity.Book, error) {
	b, err := books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, storeErr("get book", err)
	}
	if !b.OwnedBy(callerID) {
		return nil, ErrForbidden
	}
	return b, nil
}

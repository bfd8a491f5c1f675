package application

import (
	"context"
	"io"

	"github.com/oksasatya/readlog/internal/domain/entity"
)

// BlobStore persists uploaded bytes and returns a path or URI for them.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// BookIndexer keeps the search index in step with books. Failures are logged, never returned to callers.
type BookIndexer interface {
	IndexBook(ctx context.Context, b *entity.Book) error
	SearchBooks(ctx context.Context, query string, size int) ([]BookHit, error)
}

// BookHit is one search result.
type BookHit struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Notifier is told about new registrations.
type Notifier interface {
	UserRegistered(ctx context.Context, u *entity.User) error
}

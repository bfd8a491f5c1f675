package application

import (
	"context"

	"github.com/oksasatya/readlog/internal/domain/entity"
	repo "github.com/oksasatya/readlog/internal/domain/repository"
	"github.com/oksasatya/readlog/pkg/pagination"
)

// AdminService serves the listing endpoints in store insertion order.
type AdminService struct {
	Users repo.UserRepository
	Books repo.BookRepository
	Logs  repo.ReadingLogRepository
}

func NewAdminService(users repo.UserRepository, books repo.BookRepository, logs repo.ReadingLogRepository) *AdminService {
	return &AdminService{Users: users, Books: books, Logs: logs}
}

func (s *AdminService) ListUsers(ctx context.Context, p pagination.Page) ([]entity.User, error) {
	out, err := s.Users.List(ctx, p.Offset(), p.Limit)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return out, nil
}

func (s *AdminService) ListBooks(ctx context.Context, p pagination.Page) ([]entity.Book, error) {
	out, err := s.Books.List(ctx, p.Offset(), p.Limit)
	if err != nil {
		return nil, storeErr("list books", err)
	}
	return out, nil
}

func (s *AdminService) ListReadingLogs(ctx context.Context, p pagination.Page) ([]entity.ReadingLog, error) {
	out, err := s.Logs.List(ctx, p.Offset(), p.Limit)
	if err != nil {
		return nil, storeErr("list reading logs", err)
	}
	return out, nil
}

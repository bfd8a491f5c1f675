package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/readlog/internal/domain/entity"
	repo "github.com/oksasatya/readlog/internal/domain/repository"
)

type ReadingService struct {
	Books repo.BookRepository
	Logs  repo.ReadingLogRepository
}

func NewReadingService(books repo.BookRepository, logs repo.ReadingLogRepository) *ReadingService {
	return &ReadingService{Books: books, Logs: logs}
}

type CreateReadingLogInput struct {
	BookID string
	Date   string
	Notes  string
}

// CreateReadingLog succeeds only when the book exists and belongs to callerID.
func (s *ReadingService) CreateReadingLog(ctx context.Context, callerID uuid.UUID, in CreateReadingLogInput) (*entity.ReadingLog, error) {
	fe := fieldErrors{}
	fe.require("bookId", in.BookID)
	fe.require("date", in.Date)
	fe.require("notes", in.Notes)

	var bookID uuid.UUID
	if _, missing := fe["bookId"]; !missing {
		id, err := uuid.Parse(strings.TrimSpace(in.BookID))
		if err != nil {
			fe["bookId"] = "must be a valid UUID"
		}
		bookID = id
	}
	var date time.Time
	if _, missing := fe["date"]; !missing {
		d, err := ParseDate(in.Date)
		if err != nil {
			fe["date"] = "must be a date (YYYY-MM-DD or RFC3339)"
		}
		date = d
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	if _, err := authorizeBookOwner(ctx, s.Books, bookID, callerID); err != nil {
		return nil, err
	}

	l := &entity.ReadingLog{BookID: bookID, Date: date, Notes: strings.TrimSpace(in.Notes)}
	if err := s.Logs.Create(ctx, l); err != nil {
		return nil, storeErr("create reading log", err)
	}
	return l, nil
}

// ParseDate accepts a calendar date or an RFC3339 timestamp and keeps only the UTC date.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(entity.DateLayout, raw); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

package repository

import (
	"context"

	"github.com/oksasatya/readlog/internal/domain/entity"
)

// ReadingLogRepository persists reading logs.
type ReadingLogRepository interface {
	Create(ctx context.Context, l *entity.ReadingLog) error
	List(ctx context.Context, offset, limit int) ([]entity.ReadingLog, error)
}

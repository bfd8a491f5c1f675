package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/internal/domain/repository"
)

type ReadingLogRepository struct {
	pool *pgxpool.Pool
}

func NewReadingLogRepository(pool *pgxpool.Pool) *ReadingLogRepository {
	return &ReadingLogRepository{pool: pool}
}

func (r *ReadingLogRepository) Create(ctx context.Context, l *entity.ReadingLog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reading_logs (book_id, date, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, l.BookID, l.Date, l.Notes)

	return mapError(row.Scan(&l.ID, &l.CreatedAt))
}

func (r *ReadingLogRepository) List(ctx context.Context, offset, limit int) ([]entity.ReadingLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, book_id, date, notes, created_at
		FROM reading_logs
		ORDER BY seq
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.ReadingLog, 0, limit)
	for rows.Next() {
		var l entity.ReadingLog
		if err := rows.Scan(&l.ID, &l.BookID, &l.Date, &l.Notes, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

var _ repository.ReadingLogRepository = (*ReadingLogRepository)(nil)

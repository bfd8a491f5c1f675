package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/internal/domain/repository"
)

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

const bookColumns = `id, title, author, owner_id, cover_image_path, created_at`

func scanBook(row pgx.Row) (*entity.Book, error) {
	b := &entity.Book{}
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.OwnerID, &b.CoverImagePath, &b.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *BookRepository) Create(ctx context.Context, b *entity.Book) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO books (title, author, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, b.Title, b.Author, b.OwnerID)

	return mapError(row.Scan(&b.ID, &b.CreatedAt))
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	return scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
}

func (r *BookRepository) SetCoverImage(ctx context.Context, id uuid.UUID, path string) (*entity.Book, error) {
	return scanBook(r.pool.QueryRow(ctx, `
		UPDATE books
		SET cover_image_path = $1
		WHERE id = $2
		RETURNING `+bookColumns, path, id))
}

func (r *BookRepository) List(ctx context.Context, offset, limit int) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY seq
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Book, 0, limit)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

var _ repository.BookRepository = (*BookRepository)(nil)

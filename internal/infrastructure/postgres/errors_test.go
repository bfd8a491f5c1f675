package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/readlog/internal/domain/repository"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound)

	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: usersEmailUniqueKey}
	assert.ErrorIs(t, mapError(dup), repository.ErrDuplicateEmail)

	other := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "books_pkey"}
	assert.Same(t, other, mapError(other))

	boom := errors.New("conn reset")
	assert.Equal(t, boom, mapError(boom))
}

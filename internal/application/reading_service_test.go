package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingService_CreateReadingLog(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)
	owner := env.mustRegister(t, "Ada", "ada@example.com")
	other := env.mustRegister(t, "Cy", "cy@example.com")
	book := env.mustCreateBook(t, owner.ID, "Dune")

	t.Run("owner succeeds", func(t *testing.T) {
		l, err := env.readings.CreateReadingLog(ctx, owner.ID, CreateReadingLogInput{
			BookID: book.ID.String(), Date: "2024-03-01", Notes: "Chapter one",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.Equal(t, book.ID, l.BookID)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), l.Date)
		assert.False(t, l.CreatedAt.IsZero())
	})

	t.Run("other owner is forbidden, not not-found", func(t *testing.T) {
		_, err := env.readings.CreateReadingLog(ctx, other.ID, CreateReadingLogInput{
			BookID: book.ID.String(), Date: "2024-03-01", Notes: "sneaky",
		})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NotErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("missing book is not-found, not forbidden", func(t *testing.T) {
		_, err := env.readings.CreateReadingLog(ctx, owner.ID, CreateReadingLogInput{
			BookID: uuid.NewString(), Date: "2024-03-01", Notes: "ghost",
		})
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.NotErrorIs(t, err, ErrForbidden)
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string]CreateReadingLogInput{
			"bookId": {Date: "2024-03-01", Notes: "n"},
			"date":   {BookID: book.ID.String(), Notes: "n"},
			"notes":  {BookID: book.ID.String(), Date: "2024-03-01"},
		}
		for field, in := range cases {
			_, err := env.readings.CreateReadingLog(ctx, owner.ID, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, field)
			assert.Contains(t, verr.Fields, field)
		}
	})

	t.Run("malformed ids and dates", func(t *testing.T) {
		_, err := env.readings.CreateReadingLog(ctx, owner.ID, CreateReadingLogInput{BookID: "42", Date: "yesterday", Notes: "n"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "bookId")
		assert.Contains(t, verr.Fields, "date")
	})

	t.Run("ownership re-read after each call", func(t *testing.T) {
		_, err := env.readings.CreateReadingLog(ctx, owner.ID, CreateReadingLogInput{BookID: book.ID.String(), Date: "2024-03-02", Notes: "again"})
		require.NoError(t, err)
		logs, err := env.store.ReadingLogs().List(ctx, 0, 100)
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})
}

func TestReadingService_StoreFailure(t *testing.T) {
	svc := NewReadingService(failingBooks{}, nil)
	_, err := svc.CreateReadingLog(context.Background(), uuid.New(), CreateReadingLogInput{
		BookID: uuid.NewString(), Date: "2024-01-01", Notes: "n",
	})
	assert.ErrorIs(t, err, ErrStore)
	assert.NotErrorIs(t, err, ErrBookNotFound)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-02-29T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

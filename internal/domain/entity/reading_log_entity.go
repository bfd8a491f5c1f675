package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for ReadingLog.Date on the wire.
const DateLayout = "2006-01-02"

// ReadingLog records one reading session of a book.
type ReadingLog struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// Package memory keeps every record in-process. It backs STORE_DRIVER=memory and the tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/internal/domain/repository"
)

// Store holds users, books and reading logs behind one lock.
// Slices preserve insertion order; maps index by id.
type Store struct {
	mu sync.RWMutex

	users    []entity.User
	userIdx  map[uuid.UUID]int
	emailIdx map[string]uuid.UUID
	books    []entity.Book
	bookIdx  map[uuid.UUID]int
	readLogs []entity.ReadingLog

	now func() time.Time
}

// NewStore initializes an empty store.
func NewStore() *Store {
	return &Store{
		userIdx:  make(map[uuid.UUID]int),
		emailIdx: make(map[string]uuid.UUID),
		bookIdx:  make(map[uuid.UUID]int),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the credential store view.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Books returns the book store view.
func (s *Store) Books() *BookRepository { return &BookRepository{s: s} }

// ReadingLogs returns the reading log store view.
func (s *Store) ReadingLogs() *ReadingLogRepository { return &ReadingLogRepository{s: s} }

// window clamps offset/limit to a slice of length n.
func window(n, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := offset + limit
	if limit < 0 || end > n {
		end = n
	}
	return offset, end
}

type UserRepository struct{ s *Store }

// Create checks and reserves the email under the write lock, mirroring a unique index.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.s.emailIdx[u.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.New()
	u.CreatedAt = r.s.now()
	r.s.userIdx[u.ID] = len(r.s.users)
	r.s.emailIdx[u.Email] = u.ID
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.userIdx[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.s.users[i]
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	id, ok := r.s.emailIdx[email]
	r.s.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	from, to := window(len(r.s.users), offset, limit)
	out := make([]entity.User, to-from)
	copy(out, r.s.users[from:to])
	return out, nil
}

type BookRepository struct{ s *Store }

func (r *BookRepository) Create(ctx context.Context, b *entity.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = uuid.New()
	b.CreatedAt = r.s.now()
	r.s.bookIdx[b.ID] = len(r.s.books)
	r.s.books = append(r.s.books, *b)
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.bookIdx[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b := r.s.books[i]
	return &b, nil
}

func (r *BookRepository) SetCoverImage(ctx context.Context, id uuid.UUID, path string) (*entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.bookIdx[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.s.books[i].CoverImagePath = path
	b := r.s.books[i]
	return &b, nil
}

func (r *BookRepository) List(ctx context.Context, offset, limit int) ([]entity.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	from, to := window(len(r.s.books), offset, limit)
	out := make([]entity.Book, to-from)
	copy(out, r.s.books[from:to])
	return out, nil
}

type ReadingLogRepository struct{ s *Store }

func (r *ReadingLogRepository) Create(ctx context.Context, l *entity.ReadingLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = uuid.New()
	l.CreatedAt = r.s.now()
	r.s.readLogs = append(r.s.readLogs, *l)
	return nil
}

func (r *ReadingLogRepository) List(ctx context.Context, offset, limit int) ([]entity.ReadingLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	from, to := window(len(r.s.readLogs), offset, limit)
	out := make([]entity.ReadingLog, to-from)
	copy(out, r.s.readLogs[from:to])
	return out, nil
}

var (
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.BookRepository       = (*BookRepository)(nil)
	_ repository.ReadingLogRepository = (*ReadingLogRepository)(nil)
)

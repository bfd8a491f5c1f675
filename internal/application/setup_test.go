package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/internal/infrastructure/memory"
	"github.com/oksasatya/readlog/pkg/helpers"
)

type testEnv struct {
	store    *memory.Store
	users    *UserService
	books    *BookService
	readings *ReadingService
	admin    *AdminService
	blobs    *fakeBlobStore
	notifier *fakeNotifier
	jwt      *helpers.JWTManager
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	jwt, err := helpers.NewJWTManager("test-secret")
	require.NoError(t, err)
	blobs := &fakeBlobStore{objects: map[string][]byte{}}
	notifier := &fakeNotifier{}

	return &testEnv{
		store:    store,
		users:    NewUserService(store.Users(), helpers.NewPasswordHasher(bcrypt.MinCost), jwt, notifier, nil),
		books:    NewBookService(store.Books(), blobs, nil, nil),
		readings: NewReadingService(store.Books(), store.ReadingLogs()),
		admin:    NewAdminService(store.Users(), store.Books(), store.ReadingLogs()),
		blobs:    blobs,
		notifier: notifier,
		jwt:      jwt,
	}
}

func (e *testEnv) mustRegister(t *testing.T, name, email string) *entity.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "password123"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) mustCreateBook(t *testing.T, owner uuid.UUID, title string) *entity.Book {
	t.Helper()
	b, err := e.books.CreateBook(context.Background(), owner, CreateBookInput{Title: title, Author: "Author"})
	require.NoError(t, err)
	return b
}

type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (f *fakeBlobStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = b
	return "/uploads/" + key, nil
}

func (f *fakeBlobStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type fakeNotifier struct {
	mu    sync.Mutex
	users []uuid.UUID
	err   error
}

func (f *fakeNotifier) UserRegistered(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, u.ID)
	return f.err
}

type fakeIndexer struct {
	mu      sync.Mutex
	indexed map[uuid.UUID]entity.Book
	err     error
}

func (f *fakeIndexer) IndexBook(_ context.Context, b *entity.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexed == nil {
		f.indexed = map[uuid.UUID]entity.Book{}
	}
	f.indexed[b.ID] = *b
	return f.err
}

func (f *fakeIndexer) SearchBooks(_ context.Context, query string, _ int) ([]BookHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []BookHit
	for _, b := range f.indexed {
		if bytes.Contains([]byte(b.Title), []byte(query)) {
			out = append(out, BookHit{ID: b.ID.String(), Title: b.Title, Author: b.Author})
		}
	}
	return out, nil
}

var errBoom = errors.New("connection reset by peer")

// failingBooks fails every call with errBoom.
type failingBooks struct{}

func (failingBooks) Create(context.Context, *entity.Book) error { return errBoom }
func (failingBooks) GetByID(context.Context, uuid.UUID) (*entity.Book, error) {
	return nil, errBoom
}
func (failingBooks) SetCoverImage(context.Context, uuid.UUID, string) (*entity.Book, error) {
	return nil, errBoom
}
func (failingBooks) List(context.Context, int, int) ([]entity.Book, error) { return nil, errBoom }

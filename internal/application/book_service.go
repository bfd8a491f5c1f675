package application

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/internal/domain/entity"
	repo "github.com/oksasatya/readlog/internal/domain/repository"
)

type BookService struct {
	Books   repo.BookRepository
	Blobs   BlobStore
	Indexer BookIndexer
	Logger  *logrus.Logger
}

func NewBookService(books repo.BookRepository, blobs BlobStore, indexer BookIndexer, logger *logrus.Logger) *BookService {
	return &BookService{Books: books, Blobs: blobs, Indexer: indexer, Logger: logger}
}

type CreateBookInput struct {
	Title  string
	Author string
}

// CreateBook persists a book owned by callerID. The owner never comes from the request body.
func (s *BookService) CreateBook(ctx context.Context, callerID uuid.UUID, in CreateBookInput) (*entity.Book, error) {
	fe := fieldErrors{}
	fe.require("title", in.Title)
	fe.require("author", in.Author)
	if callerID == uuid.Nil {
		fe["callerId"] = "is required"
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	b := &entity.Book{
		Title:   strings.TrimSpace(in.Title),
		Author:  strings.TrimSpace(in.Author),
		OwnerID: callerID,
	}
	if err := s.Books.Create(ctx, b); err != nil {
		return nil, storeErr("create book", err)
	}
	s.index(ctx, b)
	return b, nil
}

// GetBook returns a book by id.
func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	b, err := s.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, storeErr("get book", err)
	}
	return b, nil
}

// AttachCoverImage points the book at an already stored image. Only the owner may do so.
func (s *BookService) AttachCoverImage(ctx context.Context, callerID, bookID uuid.UUID, imagePath string) (*entity.Book, error) {
	fe := fieldErrors{}
	if bookID == uuid.Nil {
		fe["bookId"] = "is required"
	}
	fe.require("image", imagePath)
	if err := fe.err(); err != nil {
		return nil, err
	}

	if _, err := authorizeBookOwner(ctx, s.Books, bookID, callerID); err != nil {
		return nil, err
	}
	b, err := s.Books.SetCoverImage(ctx, bookID, imagePath)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, storeErr("set cover image", err)
	}
	s.index(ctx, b)
	return b, nil
}

// CheckOwner confirms bookID exists and belongs to callerID.
func (s *BookService) CheckOwner(ctx context.Context, callerID, bookID uuid.UUID) (*entity.Book, error) {
	return authorizeBookOwner(ctx, s.Books, bookID, callerID)
}

type CoverUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadCover checks ownership before writing any bytes, stores the image, then attaches it.
func (s *BookService) UploadCover(ctx context.Context, callerID, bookID uuid.UUID, up CoverUpload) (*entity.Book, error) {
	if bookID == uuid.Nil {
		return nil, &ValidationError{Fields: map[string]string{"bookId": "is required"}}
	}
	if _, err := authorizeBookOwner(ctx, s.Books, bookID, callerID); err != nil {
		return nil, err
	}
	if s.Blobs == nil {
		return nil, storeErr("upload cover", errors.New("blob store not configured"))
	}

	key := path.Join("covers", bookID.String(), uuid.NewString()+extensionFor(up.ContentType, up.Filename))
	location, err := s.Blobs.Put(ctx, key, up.Body, up.Size, up.ContentType)
	if err != nil {
		return nil, storeErr("upload cover", err)
	}
	return s.AttachCoverImage(ctx, callerID, bookID, location)
}

// SearchBooks runs a full text query against the index. Empty without an indexer.
func (s *BookService) SearchBooks(ctx context.Context, query string, size int) ([]BookHit, error) {
	if s.Indexer == nil || strings.TrimSpace(query) == "" {
		return []BookHit{}, nil
	}
	return s.Indexer.SearchBooks(ctx, query, size)
}

func (s *BookService) index(ctx context.Context, b *entity.Book) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexBook(ctx, b); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("book_id", b.ID.String()).Warn("es index failed")
	}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func extensionFor(contentType, filename string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	return strings.ToLower(path.Ext(filename))
}

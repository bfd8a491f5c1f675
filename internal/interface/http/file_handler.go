package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/interface/middleware"
	"github.com/oksasatya/readlog/pkg/response"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// multipartOverhead leaves room for boundaries and the bookId field on top of the image.
const multipartOverhead = 64 << 10

type FileHandler struct {
	Books    *application.BookService
	Logger   *logrus.Logger
	MaxBytes int64
}

func NewFileHandler(books *application.BookService, logger *logrus.Logger, maxBytes int64) *FileHandler {
	return &FileHandler{Books: books, Logger: logger, MaxBytes: maxBytes}
}

// UploadCover accepts multipart bookId + image, checks ownership, sniffs the
// content, stores it and points the book at it.
func (h *FileHandler) UploadCover(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes+multipartOverhead)

	// FormFile parses the whole form, so the size error surfaces here.
	fh, ferr := c.FormFile("image")
	if tooLarge(ferr) {
		h.tooLarge(c)
		return
	}
	rawID := strings.TrimSpace(c.PostForm("bookId"))

	fields := map[string]string{}
	bookID, err := uuid.Parse(rawID)
	switch {
	case rawID == "":
		fields["bookId"] = "is required"
	case err != nil:
		fields["bookId"] = "must be a valid UUID"
	}
	if ferr != nil {
		fields["image"] = "is required"
	}
	if len(fields) > 0 {
		response.Error[any](c, http.StatusBadRequest, "validation failed", fields)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Books.CheckOwner(ctx, callerID, bookID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if fh.Size > h.MaxBytes {
		h.tooLarge(c)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	contentType, err := sniff(f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if contentType == "" {
		response.Error[any](c, http.StatusBadRequest, "validation failed", map[string]string{
			"image": "must be a jpeg, png, gif or webp image",
		})
		return
	}

	b, err := h.Books.UploadCover(ctx, callerID, bookID, application.CoverUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toBookDTO(b), "cover uploaded", nil)
}

func (h *FileHandler) tooLarge(c *gin.Context) {
	response.Error[any](c, http.StatusRequestEntityTooLarge, "image too large", map[string]any{"maxBytes": h.MaxBytes})
}

// sniff returns the detected image type, or "" when it is not allowed. f is rewound.
func sniff(f multipart.File) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	for _, allowed := range allowedImageTypes {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}
	return "", nil
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

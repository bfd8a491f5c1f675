package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/interface/middleware"
	"github.com/oksasatya/readlog/pkg/response"
)

type BookHandler struct {
	Svc    *application.BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc *application.BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

// createBookRequest has no owner field; any ownerId in the body is dropped by the decoder.
type createBookRequest struct {
	Title  string `json:"title" binding:"required,notblank"`
	Author string `json:"author" binding:"required,notblank"`
}

func (h *BookHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil)
		return
	}
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	b, err := h.Svc.CreateBook(c.Request.Context(), callerID, application.CreateBookInput{Title: req.Title, Author: req.Author})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toBookDTO(b), "book created", nil)
}

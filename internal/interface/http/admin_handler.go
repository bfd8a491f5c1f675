package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/pkg/pagination"
	"github.com/oksasatya/readlog/pkg/response"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Books  *application.BookService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, books *application.BookService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Books: books, Logger: logger}
}

func pageFrom(c *gin.Context) pagination.Page {
	return pagination.Parse(c.Query("page"), c.Query("limit"))
}

func pageMeta(p pagination.Page, count int) map[string]any {
	return map[string]any{"page": p.Page, "limit": p.Limit, "count": count}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	p := pageFrom(c)
	users, err := h.Svc.ListUsers(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]userDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "users", pageMeta(p, len(out)))
}

func (h *AdminHandler) ListBooks(c *gin.Context) {
	p := pageFrom(c)
	books, err := h.Svc.ListBooks(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]bookDTO, 0, len(books))
	for i := range books {
		out = append(out, toBookDTO(&books[i]))
	}
	response.Success(c, http.StatusOK, out, "books", pageMeta(p, len(out)))
}

func (h *AdminHandler) ListReadingLogs(c *gin.Context) {
	p := pageFrom(c)
	logs, err := h.Svc.ListReadingLogs(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]readingLogDTO, 0, len(logs))
	for i := range logs {
		out = append(out, toReadingLogDTO(&logs[i]))
	}
	response.Success(c, http.StatusOK, out, "reading logs", pageMeta(p, len(out)))
}

// SearchBooks queries the book index: ?q=dune&size=10
func (h *AdminHandler) SearchBooks(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Books.SearchBooks(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

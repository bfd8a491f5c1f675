package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/interface/middleware"
	"github.com/oksasatya/readlog/pkg/response"
)

type ReadingHandler struct {
	Svc    *application.ReadingService
	Logger *logrus.Logger
}

func NewReadingHandler(svc *application.ReadingService, logger *logrus.Logger) *ReadingHandler {
	return &ReadingHandler{Svc: svc, Logger: logger}
}

type createReadingRequest struct {
	BookID string `json:"bookId" binding:"required,notblank"`
	Date   string `json:"date" binding:"required,notblank"`
	Notes  string `json:"notes" binding:"required,notblank"`
}

func (h *ReadingHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil)
		return
	}
	var req createReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	l, err := h.Svc.CreateReadingLog(c.Request.Context(), callerID, application.CreateReadingLogInput{
		BookID: req.BookID,
		Date:   req.Date,
		Notes:  req.Notes,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toReadingLogDTO(l), "reading log created", nil)
}

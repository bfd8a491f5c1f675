package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/readlog/internal/interface/http"
	"github.com/oksasatya/readlog/internal/interface/middleware"
	"github.com/oksasatya/readlog/pkg/helpers"
)

// BookModule wires the bearer-protected write routes:
// POST /api/book, POST /api/reading, POST /api/file/upload
type BookModule struct {
	Books    *handlers.BookHandler
	Readings *handlers.ReadingHandler
	Files    *handlers.FileHandler
	JWT      *helpers.JWTManager
	rdb      *redis.Client
}

func NewBookModule(books *handlers.BookHandler, readings *handlers.ReadingHandler, files *handlers.FileHandler, jwt *helpers.JWTManager, rdb *redis.Client) *BookModule {
	return &BookModule{Books: books, Readings: readings, Files: files, JWT: jwt, rdb: rdb}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(
		middleware.JWTAuth(m.JWT),
		middleware.RateLimit(m.rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/book", m.Books.Create)
		auth.POST("/reading", m.Readings.Create)
		auth.POST("/file/upload", m.Files.UploadCover)
	}
}

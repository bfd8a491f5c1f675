package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/readlog/internal/interface/http"
	"github.com/oksasatya/readlog/internal/interface/middleware"
)

// AdminModule serves paginated listings under /api/admin.
// Open unless an admin key is configured.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Key     string
}

func NewAdminModule(h *handlers.AdminHandler, key string) *AdminModule {
	return &AdminModule{Handler: h, Key: key}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.AdminKey(m.Key))
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.GET("/books", m.Handler.ListBooks)
		admin.GET("/books/search", m.Handler.SearchBooks)
		admin.GET("/reading", m.Handler.ListReadingLogs)
	}
}

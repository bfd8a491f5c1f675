package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/readlog/internal/interface/http"
	"github.com/oksasatya/readlog/internal/interface/middleware"
)

// UserModule wires registration and login.
// Public, rate limited per IP and route: POST /api/user, POST /api/user/login
type UserModule struct {
	Handler *handlers.UserHandler
	rdb     *redis.Client
	limit   int
	window  time.Duration
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, limit int, window time.Duration) *UserModule {
	return &UserModule{Handler: h, rdb: rdb, limit: limit, window: window}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.rdb, m.limit, m.window, middleware.KeyByIPAndPath(), nil)

	rg.POST("/user", limiter, m.Handler.Register)
	rg.POST("/user/login", limiter, m.Handler.Login)
}

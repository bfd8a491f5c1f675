package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/readlog/internal/interface/http"
)

type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)
}

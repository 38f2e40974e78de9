package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentwise/rentwise/internal/container"
	handlers "github.com/rentwise/rentwise/internal/interface/http"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/helpers"
)

// PropertyModule wires property CRUD.

type PropertyModule struct {
	Handler *handlers.PropertyHandler
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("/properties", m.Handler.List)
		auth.GET("/properties/:id", m.Handler.Get)
		auth.POST("/properties", m.Handler.Create)
		auth.PUT("/properties/:id", m.Handler.Update)
		auth.DELETE("/properties/:id", m.Handler.Delete)
	}
}

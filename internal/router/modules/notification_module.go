package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rentwise/rentwise/internal/container"
	handlers "github.com/rentwise/rentwise/internal/interface/http"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/helpers"
)

// NotificationModule wires the SSE stream. No rate limiter here: the stream
// is a single long-lived request per client.

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/notifications/stream", m.Handler.Stream)
	}
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentwise/rentwise/internal/container"
	handlers "github.com/rentwise/rentwise/internal/interface/http"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/helpers"
)

// TenantModule wires tenant CRUD, property assignment, and search.

type TenantModule struct {
	Tenants   *handlers.TenantHandler
	Dashboard *handlers.DashboardHandler
	JWT       *helpers.JWTManager
}

func NewTenantModule(t *handlers.TenantHandler, d *handlers.DashboardHandler, jwt *helpers.JWTManager) *TenantModule {
	return &TenantModule{Tenants: t, Dashboard: d, JWT: jwt}
}

func (m *TenantModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("/tenants", m.Tenants.List)
		auth.GET("/tenants/search", m.Dashboard.SearchTenants)
		auth.GET("/tenants/:id", m.Tenants.Get)
		auth.POST("/tenants", m.Tenants.Create)
		auth.PUT("/tenants/:id", m.Tenants.Update)
		auth.DELETE("/tenants/:id", m.Tenants.Delete)
		auth.PUT("/tenants/:id/property", m.Tenants.AssignProperty)
	}
}

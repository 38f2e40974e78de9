package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentwise/rentwise/internal/container"
	handlers "github.com/rentwise/rentwise/internal/interface/http"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/helpers"
)

// DashboardModule wires the aggregated views and the tenant-request
// lifecycle endpoints. Admin-only authorization happens in the services;
// routes only require an authenticated session.

type DashboardModule struct {
	Dashboard *handlers.DashboardHandler
	Requests  *handlers.RequestHandler
	JWT       *helpers.JWTManager
}

func NewDashboardModule(d *handlers.DashboardHandler, r *handlers.RequestHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Dashboard: d, Requests: r, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("/dashboard/properties", m.Dashboard.AllProperties)
		auth.GET("/dashboard/tenants", m.Dashboard.AllTenants)
		auth.GET("/dashboard/requests/pending", m.Dashboard.PendingRequests)

		auth.GET("/dashboard/my/tenants", m.Dashboard.MyTenants)
		auth.GET("/dashboard/my/properties", m.Dashboard.MyProperties)
		auth.GET("/dashboard/my/requests", m.Dashboard.MyRequests)

		auth.GET("/tenant-requests", m.Requests.List)
		auth.POST("/tenant-requests", m.Requests.Create)
		auth.POST("/tenant-requests/:id/approve", m.Requests.Approve)
		auth.POST("/tenant-requests/:id/reject", m.Requests.Reject)
	}
}

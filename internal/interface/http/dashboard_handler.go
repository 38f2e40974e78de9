package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/application"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/response"
)

// DashboardHandler serves the enriched cross-domain views. Admin endpoints
// cover the whole estate; the /my endpoints are scoped to the caller.
type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

func (h *DashboardHandler) AllProperties(c *gin.Context) {
	properties, err := h.Svc.AllProperties(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, properties, "properties", nil)
}

func (h *DashboardHandler) AllTenants(c *gin.Context) {
	tenants, err := h.Svc.AllTenants(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, tenants, "tenants", nil)
}

func (h *DashboardHandler) PendingRequests(c *gin.Context) {
	requests, err := h.Svc.PendingRequests(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, requests, "pending tenant requests", nil)
}

func (h *DashboardHandler) MyTenants(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	tenants, err := h.Svc.TenantsForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, tenants, "my tenants", nil)
}

func (h *DashboardHandler) MyProperties(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	properties, err := h.Svc.PropertiesForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, properties, "my properties", nil)
}

func (h *DashboardHandler) MyRequests(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	requests, err := h.Svc.RequestsForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, requests, "my tenant requests", nil)
}

func (h *DashboardHandler) SearchTenants(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	hits, err := h.Svc.SearchTenants(c.Request.Context(), middleware.CallerFrom(c), q, size)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "tenant search results", nil)
}

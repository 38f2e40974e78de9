package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/application"
	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/response"
	"github.com/rentwise/rentwise/pkg/validation"
)

type TenantHandler struct {
	Svc       *application.TenantService
	Lifecycle *application.LifecycleService
	Logger    *logrus.Logger
}

func NewTenantHandler(svc *application.TenantService, lifecycle *application.LifecycleService, logger *logrus.Logger) *TenantHandler {
	return &TenantHandler{Svc: svc, Lifecycle: lifecycle, Logger: logger}
}

type tenantRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,phone"`
	UserID     int64  `json:"userId" binding:"required"`
	PropertyID *int64 `json:"propertyId"`
}

type assignPropertyRequest struct {
	PropertyID int64 `json:"propertyId" binding:"required"`
}

func (h *TenantHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.IsAdmin() {
		response.Error[any](c, http.StatusForbidden, "admin access required", nil)
		return
	}
	tenants, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, tenants, "tenants", nil)
}

func (h *TenantHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid tenant id", nil)
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, t, "tenant", nil)
}

func (h *TenantHandler) Create(c *gin.Context) {
	var req tenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t := &entity.Tenant{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), t)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, t, "tenant created", nil)
}

func (h *TenantHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid tenant id", nil)
		return
	}
	var req tenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t := &entity.Tenant{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
	}
	t, err = h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), t)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, t, "tenant updated", nil)
}

func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid tenant id", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "tenant deleted", nil)
}

// AssignProperty links a tenant to a property. The property id is not
// validated against the property domain here.
func (h *TenantHandler) AssignProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid tenant id", nil)
		return
	}
	var req assignPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Lifecycle.AssignProperty(c.Request.Context(), middleware.CallerFrom(c), id, req.PropertyID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, t, "property assigned", nil)
}

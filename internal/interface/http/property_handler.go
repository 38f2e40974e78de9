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

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type propertyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ZipCode     string  `json:"zipCode"`
	Type        string  `json:"type"`
	Bedrooms    int     `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms   int     `json:"bathrooms" binding:"omitempty,gte=0"`
	RentAmount  float64 `json:"rentAmount" binding:"omitempty,gte=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Description string  `json:"description"`
	UserID      int64   `json:"userId" binding:"required"`
}

func (r *propertyRequest) toEntity(id int64) *entity.Property {
	return &entity.Property{
		ID:          id,
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		Type:        r.Type,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		RentAmount:  r.RentAmount,
		Status:      r.Status,
		Description: r.Description,
		UserID:      r.UserID,
	}
}

func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, properties, "properties", nil)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, p, "property", nil)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), req.toEntity(0))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created", nil)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), req.toEntity(id))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, p, "property updated", nil)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid property id", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "property deleted", nil)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/application"
	"github.com/rentwise/rentwise/internal/interface/middleware"
	"github.com/rentwise/rentwise/pkg/response"
	"github.com/rentwise/rentwise/pkg/validation"
)

// RequestHandler exposes the tenant-request lifecycle: submission by any
// authenticated member and the approve/reject transition for admins.
type RequestHandler struct {
	Svc    *application.LifecycleService
	Logger *logrus.Logger
}

func NewRequestHandler(svc *application.LifecycleService, logger *logrus.Logger) *RequestHandler {
	return &RequestHandler{Svc: svc, Logger: logger}
}

type createRequestRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	caller := middleware.CallerFrom(c)
	r, err := h.Svc.CreateRequest(c.Request.Context(), application.CreateRequestInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		RequestedByUserID: caller.UserID,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, r, "tenant request submitted", nil)
}

func (h *RequestHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.IsAdmin() {
		response.Error[any](c, http.StatusForbidden, "admin access required", nil)
		return
	}
	requests, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, requests, "tenant requests", nil)
}

func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request id", nil)
		return
	}
	r, err := h.Svc.Approve(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, r, "tenant request approved", nil)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request id", nil)
		return
	}
	r, err := h.Svc.Reject(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, r, "tenant request rejected", nil)
}

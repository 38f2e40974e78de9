package handlers

import (
	"errors"
	"net/http"

	"github.com/rentwise/rentwise/internal/application"
)

// statusFor maps service errors onto HTTP status codes so every handler
// reports the same way.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrRequestNotFound),
		errors.Is(err, application.ErrTenantNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrPropertyNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrDuplicateEmail),
		errors.Is(err, application.ErrConflictingRequest),
		errors.Is(err, application.ErrInvalidStateTransition),
		errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, application.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

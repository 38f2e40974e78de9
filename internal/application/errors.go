package application

import (
	"errors"

	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// Sentinel errors returned by the application services. Handlers match them
// with errors.Is to choose a status code; messages are user-facing.
var (
	ErrRequestNotFound  = errors.New("tenant request not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")

	// ErrDuplicateEmail: the email already belongs to an existing tenant.
	ErrDuplicateEmail = errors.New("email already exists as a tenant")
	// ErrConflictingRequest: a pending request for the email already exists.
	ErrConflictingRequest = errors.New("a pending request already exists for this email")
	// ErrInvalidStateTransition: approve/reject attempted on a non-pending
	// request. Wrapped with an operation-specific message.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	ErrNotAuthorized      = errors.New("caller is not authorized for this operation")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")

	// ErrUpstreamUnavailable: a dependent entity source failed to respond.
	// Aggregation downgrades it per sub-lookup; base fetches propagate it.
	ErrUpstreamUnavailable = repo.ErrUpstreamUnavailable
)

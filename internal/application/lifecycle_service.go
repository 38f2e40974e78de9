package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// LifecycleService owns the tenant-request state machine: creation with
// duplicate/conflict detection, the single PENDING -> APPROVED/REJECTED
// transition, tenant materialization on approval, and best-effort event
// publication.
//
// Approval performs two independent commits (create tenant, mark request
// approved) with no distributed transaction. If the process dies between
// them, re-running the approval surfaces ErrDuplicateEmail because the
// tenant-email uniqueness is re-checked at the point of commit; the stale
// request is then resolved by rejecting it. The check-then-act window on
// email uniqueness is accepted at this scale; the Postgres store narrows it
// further with a unique index on tenants.email.
type LifecycleService struct {
	Requests repo.TenantRequestStore
	Tenants  repo.TenantSource
	Events   repo.EventPublisher
	Index    *TenantIndexer
	Logger   *logrus.Logger
}

func NewLifecycleService(requests repo.TenantRequestStore, tenants repo.TenantSource, events repo.EventPublisher, index *TenantIndexer, logger *logrus.Logger) *LifecycleService {
	return &LifecycleService{Requests: requests, Tenants: tenants, Events: events, Index: index, Logger: logger}
}

// CreateRequestInput carries the submitter-provided fields of a new request.
type CreateRequestInput struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	RequestedByUserID int64
}

// CreateRequest persists a new PENDING request after verifying the email is
// neither an existing tenant nor already covered by a pending request
// (case-insensitive). The CREATED event is published best-effort.
func (s *LifecycleService) CreateRequest(ctx context.Context, in CreateRequestInput) (*entity.TenantRequest, error) {
	email := strings.TrimSpace(in.Email)

	exists, err := s.Tenants.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	pending, err := s.Requests.ListByStatus(ctx, entity.RequestPending)
	if err != nil {
		return nil, err
	}
	for i := range pending {
		if strings.EqualFold(pending[i].Email, email) {
			return nil, ErrConflictingRequest
		}
	}

	r := &entity.TenantRequest{
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		Email:             email,
		Phone:             strings.TrimSpace(in.Phone),
		RequestedByUserID: in.RequestedByUserID,
		Status:            entity.RequestPending,
	}
	if err := s.Requests.Create(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, r, entity.EventCreated)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"request_id": r.ID, "requested_by": r.RequestedByUserID}).Info("tenant request created")
	}
	return r, nil
}

// Approve materializes a tenant from a pending request and marks the request
// APPROVED. Tenant-email uniqueness is re-validated immediately before the
// tenant is created; a collision fails the whole operation and leaves the
// request PENDING.
func (s *LifecycleService) Approve(ctx context.Context, caller entity.Caller, id int64) (*entity.TenantRequest, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	r, err := s.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRequestNotFound
	}
	if !r.IsPending() {
		return nil, fmt.Errorf("%w: only pending requests can be approved", ErrInvalidStateTransition)
	}

	exists, err := s.Tenants.ExistsByEmail(ctx, r.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	t := &entity.Tenant{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		UserID:    r.RequestedByUserID,
	}
	if err := s.Tenants.Create(ctx, t); err != nil {
		return nil, err
	}

	r.Status = entity.RequestApproved
	if err := s.Requests.Update(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, r, entity.EventApproved)
	s.Index.IndexTenant(ctx, t)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"request_id": r.ID, "tenant_id": t.ID}).Info("tenant request approved")
	}
	return r, nil
}

// Reject marks a pending request REJECTED and publishes the event
// best-effort.
func (s *LifecycleService) Reject(ctx context.Context, caller entity.Caller, id int64) (*entity.TenantRequest, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	r, err := s.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRequestNotFound
	}
	if !r.IsPending() {
		return nil, fmt.Errorf("%w: only pending requests can be rejected", ErrInvalidStateTransition)
	}

	r.Status = entity.RequestRejected
	if err := s.Requests.Update(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, r, entity.EventRejected)

	if s.Logger != nil {
		s.Logger.WithField("request_id", r.ID).Info("tenant request rejected")
	}
	return r, nil
}

func (s *LifecycleService) ListAll(ctx context.Context) ([]entity.TenantRequest, error) {
	return s.Requests.List(ctx)
}

func (s *LifecycleService) ListPending(ctx context.Context) ([]entity.TenantRequest, error) {
	return s.Requests.ListByStatus(ctx, entity.RequestPending)
}

func (s *LifecycleService) ListByRequester(ctx context.Context, userID int64) ([]entity.TenantRequest, error) {
	return s.Requests.ListByRequester(ctx, userID)
}

// AssignProperty sets the tenant's property. The property id is not
// validated here; the aggregation layer renders a fallback label for
// dangling references.
func (s *LifecycleService) AssignProperty(ctx context.Context, caller entity.Caller, tenantID, propertyID int64) (*entity.Tenant, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	t, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTenantNotFound
	}

	t.PropertyID = &propertyID
	if err := s.Tenants.Update(ctx, t); err != nil {
		return nil, err
	}

	s.Index.IndexTenant(ctx, t)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"tenant_id": tenantID, "property_id": propertyID}).Info("property assigned to tenant")
	}
	return t, nil
}

// publish emits a lifecycle event. Failure is logged and swallowed; it never
// rolls back or fails the write that triggered it.
func (s *LifecycleService) publish(ctx context.Context, r *entity.TenantRequest, status entity.EventStatus) {
	if s.Events == nil {
		return
	}
	ev := entity.NewTenantRequestEvent(r, status)
	if err := s.Events.Publish(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"request_id": r.ID, "status": status}).Warn("failed to publish lifecycle event")
	}
}

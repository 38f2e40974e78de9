package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

var (
	admin  = entity.Caller{UserID: 1, Role: entity.RoleAdmin}
	member = entity.Caller{UserID: 2, Role: entity.RoleStandard}
)

func newLifecycle(requests *fakeRequestStore, tenants *fakeTenantSource, pub *fakePublisher) *LifecycleService {
	return NewLifecycleService(requests, tenants, pub, nil, nil)
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{}
	tenants := &fakeTenantSource{}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, tenants, pub)

	r, err := svc.CreateRequest(ctx, CreateRequestInput{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Phone:             "+15550001111",
		RequestedByUserID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, r.Status)
	assert.NotZero(t, r.ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, entity.EventCreated, pub.events[0].Status)
	assert.Equal(t, r.ID, pub.events[0].RequestID)
	assert.Equal(t, "jane@example.com", pub.events[0].Email)
}

func TestCreateRequestDuplicateTenantEmail(t *testing.T) {
	ctx := context.Background()
	tenants := &fakeTenantSource{rows: []entity.Tenant{{ID: 1, Email: "jane@example.com"}}}
	svc := newLifecycle(&fakeRequestStore{}, tenants, &fakePublisher{})

	_, err := svc.CreateRequest(ctx, CreateRequestInput{Email: "Jane@Example.com", RequestedByUserID: 2})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateRequestConflictingPending(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, &fakeTenantSource{}, pub)

	// case differs, still a conflict
	_, err := svc.CreateRequest(ctx, CreateRequestInput{Email: "JANE@EXAMPLE.COM", RequestedByUserID: 2})
	assert.ErrorIs(t, err, ErrConflictingRequest)
	assert.Empty(t, pub.events)
}

func TestCreateRequestAllowedAfterRejection(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestRejected},
	}, nextID: 1}
	svc := newLifecycle(requests, &fakeTenantSource{}, &fakePublisher{})

	r, err := svc.CreateRequest(ctx, CreateRequestInput{Email: "jane@example.com", RequestedByUserID: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, r.Status)
}

func TestCreateRequestPublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newLifecycle(requests, &fakeTenantSource{}, pub)

	r, err := svc.CreateRequest(ctx, CreateRequestInput{Email: "jane@example.com", RequestedByUserID: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, r.Status)
	assert.Len(t, requests.rows, 1)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "+15550001111", RequestedByUserID: 2, Status: entity.RequestPending},
	}, nextID: 1}
	tenants := &fakeTenantSource{}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, tenants, pub)

	r, err := svc.Approve(ctx, admin, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, r.Status)

	require.Len(t, tenants.rows, 1)
	assert.Equal(t, "jane@example.com", tenants.rows[0].Email)
	assert.Equal(t, int64(2), tenants.rows[0].UserID)
	assert.Nil(t, tenants.rows[0].PropertyID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, entity.EventApproved, pub.events[0].Status)
}

func TestApproveRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	svc := newLifecycle(requests, &fakeTenantSource{}, &fakePublisher{})

	_, err := svc.Approve(ctx, member, 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, entity.RequestPending, requests.rows[0].Status)
}

func TestApproveUnknownRequest(t *testing.T) {
	svc := newLifecycle(&fakeRequestStore{}, &fakeTenantSource{}, &fakePublisher{})
	_, err := svc.Approve(context.Background(), admin, 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestApproveTwice(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	tenants := &fakeTenantSource{}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, tenants, pub)

	_, err := svc.Approve(ctx, admin, 1)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), "only pending requests can be approved")

	// exactly one tenant and one approval event
	assert.Len(t, tenants.rows, 1)
	assert.Len(t, pub.events, 1)
}

func TestRejectThenApprove(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	tenants := &fakeTenantSource{}
	svc := newLifecycle(requests, tenants, &fakePublisher{})

	r, err := svc.Reject(ctx, admin, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, r.Status)

	_, err = svc.Approve(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Empty(t, tenants.rows)
}

func TestRejectTwice(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, &fakeTenantSource{}, pub)

	_, err := svc.Reject(ctx, admin, 1)
	require.NoError(t, err)

	_, err = svc.Reject(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), "only pending requests can be rejected")
	assert.Len(t, pub.events, 1)
}

func TestApproveEmailCollisionLeavesRequestPending(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	// a tenant with the email appeared after the request was created
	tenants := &fakeTenantSource{rows: []entity.Tenant{{ID: 5, Email: "jane@example.com"}}, nextID: 5}
	pub := &fakePublisher{}
	svc := newLifecycle(requests, tenants, pub)

	_, err := svc.Approve(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, entity.RequestPending, requests.rows[0].Status)
	assert.Len(t, tenants.rows, 1)
	assert.Empty(t, pub.events)

	// the stale request can still be resolved by rejecting it
	r, err := svc.Reject(ctx, admin, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, r.Status)
}

func TestApprovePublishFailureDoesNotRollBack(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "jane@example.com", Status: entity.RequestPending},
	}, nextID: 1}
	tenants := &fakeTenantSource{}
	svc := newLifecycle(requests, tenants, &fakePublisher{err: errors.New("broker down")})

	r, err := svc.Approve(ctx, admin, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, r.Status)
	assert.Len(t, tenants.rows, 1)
}

func TestAssignProperty(t *testing.T) {
	ctx := context.Background()
	tenants := &fakeTenantSource{rows: []entity.Tenant{{ID: 1, Email: "jane@example.com"}}, nextID: 1}
	svc := newLifecycle(&fakeRequestStore{}, tenants, &fakePublisher{})

	// property 42 is never validated to exist
	updated, err := svc.AssignProperty(ctx, admin, 1, 42)
	require.NoError(t, err)
	require.NotNil(t, updated.PropertyID)
	assert.Equal(t, int64(42), *updated.PropertyID)

	_, err = svc.AssignProperty(ctx, member, 1, 42)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.AssignProperty(ctx, admin, 99, 42)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestListByRequester(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "a@example.com", RequestedByUserID: 2, Status: entity.RequestPending},
		{ID: 2, Email: "b@example.com", RequestedByUserID: 3, Status: entity.RequestPending},
		{ID: 3, Email: "c@example.com", RequestedByUserID: 2, Status: entity.RequestRejected},
	}, nextID: 3}
	svc := newLifecycle(requests, &fakeTenantSource{}, &fakePublisher{})

	mine, err := svc.ListByRequester(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)
}

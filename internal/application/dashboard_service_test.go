package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

func ptr(v int64) *int64 { return &v }

func newDashboard(users *fakeUserSource, properties *fakePropertySource, tenants *fakeTenantSource) *DashboardService {
	lifecycle := NewLifecycleService(&fakeRequestStore{}, tenants, &fakePublisher{}, nil, nil)
	return NewDashboardService(users, properties, tenants, lifecycle, nil, nil)
}

func TestAllProperties(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserSource{rows: []entity.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nextID: 2}
	properties := &fakePropertySource{rows: []entity.Property{
		{ID: 10, Name: "Elm Street", UserID: 1},
		{ID: 11, Name: "Oak Avenue", UserID: 2},
		{ID: 12, Name: "Orphaned", UserID: 99},
	}, nextID: 12}
	tenants := &fakeTenantSource{rows: []entity.Tenant{
		{ID: 1, Email: "a@example.com", PropertyID: ptr(10)},
		{ID: 2, Email: "b@example.com", PropertyID: ptr(10)},
		{ID: 3, Email: "c@example.com", PropertyID: ptr(11)},
	}, nextID: 3}
	svc := newDashboard(users, properties, tenants)

	got, err := svc.AllProperties(ctx, admin)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "alice", got[0].OwnerName)
	assert.Equal(t, 2, got[0].TenantCount)
	assert.Equal(t, "bob", got[1].OwnerName)
	assert.Equal(t, 1, got[1].TenantCount)
	// unknown owner leaves the name unset
	assert.Empty(t, got[2].OwnerName)
	assert.Equal(t, 0, got[2].TenantCount)
}

func TestAllPropertiesRequiresAdmin(t *testing.T) {
	svc := newDashboard(&fakeUserSource{}, &fakePropertySource{}, &fakeTenantSource{})
	_, err := svc.AllProperties(context.Background(), member)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestAllPropertiesBaseFetchFailureIsFatal(t *testing.T) {
	properties := &fakePropertySource{listErr: repository.ErrUpstreamUnavailable}
	svc := newDashboard(&fakeUserSource{}, properties, &fakeTenantSource{})

	_, err := svc.AllProperties(context.Background(), admin)
	assert.ErrorIs(t, err, repository.ErrUpstreamUnavailable)
}

func TestAllPropertiesUserLookupDegrades(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserSource{listErr: repository.ErrUpstreamUnavailable}
	properties := &fakePropertySource{rows: []entity.Property{{ID: 10, Name: "Elm Street", UserID: 1}}, nextID: 10}
	tenants := &fakeTenantSource{rows: []entity.Tenant{{ID: 1, Email: "a@example.com", PropertyID: ptr(10)}}, nextID: 1}
	svc := newDashboard(users, properties, tenants)

	got, err := svc.AllProperties(ctx, admin)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].OwnerName)
	assert.Equal(t, 1, got[0].TenantCount)
}

func TestAllPropertiesTenantCountDegradesPerProperty(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserSource{rows: []entity.User{{ID: 1, Username: "alice"}}, nextID: 1}
	properties := &fakePropertySource{rows: []entity.Property{{ID: 10, UserID: 1}, {ID: 11, UserID: 1}}, nextID: 11}
	tenants := &fakeTenantSource{
		rows: []entity.Tenant{
			{ID: 1, Email: "a@example.com", PropertyID: ptr(10)},
			{ID: 2, Email: "b@example.com", PropertyID: ptr(11)},
		},
		nextID:           2,
		listByPropErrFor: map[int64]error{10: repository.ErrUpstreamUnavailable},
	}
	svc := newDashboard(users, properties, tenants)

	got, err := svc.AllProperties(ctx, admin)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// only the failing property's count degrades
	assert.Equal(t, 0, got[0].TenantCount)
	assert.Equal(t, 1, got[1].TenantCount)
	assert.Equal(t, "alice", got[0].OwnerName)
}

func TestAllTenants(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserSource{rows: []entity.User{{ID: 2, Username: "bob"}}, nextID: 2}
	properties := &fakePropertySource{rows: []entity.Property{{ID: 10, Name: "Elm Street"}}, nextID: 10}
	tenants := &fakeTenantSource{rows: []entity.Tenant{
		{ID: 1, Email: "a@example.com", UserID: 2, PropertyID: ptr(10)},
		{ID: 2, Email: "b@example.com", UserID: 99},
	}, nextID: 2}
	svc := newDashboard(users, properties, tenants)

	got, err := svc.AllTenants(ctx, admin)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].RoommateOf)
	assert.Equal(t, "Elm Street", got[0].PropertyName)
	assert.Empty(t, got[1].RoommateOf)
	assert.Empty(t, got[1].PropertyName)
}

func TestAllTenantsEmptyShortCircuits(t *testing.T) {
	ctx := context.Background()
	// user and property sources would fail if touched
	users := &fakeUserSource{listErr: repository.ErrUpstreamUnavailable}
	properties := &fakePropertySource{listErr: repository.ErrUpstreamUnavailable}
	svc := newDashboard(users, properties, &fakeTenantSource{})

	got, err := svc.AllTenants(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTenantsForUserFallbackLabel(t *testing.T) {
	ctx := context.Background()
	properties := &fakePropertySource{rows: []entity.Property{{ID: 10, Name: "Elm Street"}}, nextID: 10}
	tenants := &fakeTenantSource{rows: []entity.Tenant{
		{ID: 1, Email: "a@example.com", UserID: 2, PropertyID: ptr(10)},
		{ID: 2, Email: "b@example.com", UserID: 2, PropertyID: ptr(42)},
		{ID: 3, Email: "c@example.com", UserID: 2},
	}, nextID: 3}
	svc := newDashboard(&fakeUserSource{}, properties, tenants)

	got, err := svc.TenantsForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Elm Street", got[0].PropertyName)
	assert.Equal(t, "Property ID: 42", got[1].PropertyName)
	assert.Empty(t, got[2].PropertyName)
}

func TestTenantsForUserPropertyListFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	properties := &fakePropertySource{listErr: repository.ErrUpstreamUnavailable}
	tenants := &fakeTenantSource{rows: []entity.Tenant{
		{ID: 1, Email: "a@example.com", UserID: 2, PropertyID: ptr(10)},
	}, nextID: 1}
	svc := newDashboard(&fakeUserSource{}, properties, tenants)

	got, err := svc.TenantsForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Property ID: 10", got[0].PropertyName)
}

func TestPropertiesForUserUnion(t *testing.T) {
	ctx := context.Background()
	properties := &fakePropertySource{rows: []entity.Property{
		{ID: 10, Name: "Owned A", UserID: 2},
		{ID: 11, Name: "Hosting B", UserID: 3},
		{ID: 12, Name: "Unrelated", UserID: 4},
	}, nextID: 12}
	// one tenant lives in an owned property, one in somebody else's
	tenants := &fakeTenantSource{rows: []entity.Tenant{
		{ID: 1, Email: "a@example.com", UserID: 2, PropertyID: ptr(10)},
		{ID: 2, Email: "b@example.com", UserID: 2, PropertyID: ptr(11)},
	}, nextID: 2}
	svc := newDashboard(&fakeUserSource{}, properties, tenants)

	got, err := svc.PropertiesForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// owned entries come first, each id exactly once
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, int64(11), got[1].ID)
	assert.Equal(t, 1, got[0].TenantCount)
	assert.Equal(t, 1, got[1].TenantCount)
}

func TestPropertiesForUserTenantListFailureReturnsOwnedOnly(t *testing.T) {
	ctx := context.Background()
	properties := &fakePropertySource{rows: []entity.Property{{ID: 10, Name: "Owned A", UserID: 2}}, nextID: 10}
	tenants := &fakeTenantSource{listByUserErr: repository.ErrUpstreamUnavailable, listByPropErr: repository.ErrUpstreamUnavailable}
	svc := newDashboard(&fakeUserSource{}, properties, tenants)

	got, err := svc.PropertiesForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, 0, got[0].TenantCount)
}

func TestPendingRequestsPassthrough(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{rows: []entity.TenantRequest{
		{ID: 1, Email: "a@example.com", Status: entity.RequestPending},
		{ID: 2, Email: "b@example.com", Status: entity.RequestApproved},
	}, nextID: 2}
	tenants := &fakeTenantSource{}
	lifecycle := NewLifecycleService(requests, tenants, &fakePublisher{}, nil, nil)
	svc := NewDashboardService(&fakeUserSource{}, &fakePropertySource{}, tenants, lifecycle, nil, nil)

	got, err := svc.PendingRequests(ctx, admin)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	_, err = svc.PendingRequests(ctx, member)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestApprovedRequestVisibleInUserViews(t *testing.T) {
	ctx := context.Background()
	requests := &fakeRequestStore{}
	tenants := &fakeTenantSource{}
	lifecycle := NewLifecycleService(requests, tenants, &fakePublisher{}, nil, nil)
	svc := NewDashboardService(&fakeUserSource{}, &fakePropertySource{}, tenants, lifecycle, nil, nil)

	r, err := lifecycle.CreateRequest(ctx, CreateRequestInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", RequestedByUserID: 2,
	})
	require.NoError(t, err)

	pending, err := lifecycle.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = lifecycle.Approve(ctx, admin, r.ID)
	require.NoError(t, err)

	pending, err = lifecycle.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	mine, err := svc.TenantsForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "jane@example.com", mine[0].Email)
	assert.Empty(t, mine[0].PropertyName)

	reqs, err := svc.RequestsForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, entity.RequestApproved, reqs[0].Status)
}

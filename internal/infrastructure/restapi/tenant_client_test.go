package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

func newTenantServer(t *testing.T, handler http.HandlerFunc) *TenantClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTenantClient(NewClient(srv.URL, 2*time.Second))
}

func TestTenantClientList(t *testing.T) {
	client := newTenantServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tenants", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]entity.Tenant{
			{ID: 1, Email: "a@example.com", UserID: 2},
			{ID: 2, Email: "b@example.com", UserID: 3},
		})
	})

	tenants, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "a@example.com", tenants[0].Email)
}

func TestTenantClientGetByIDAbsent(t *testing.T) {
	client := newTenantServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	tenant, err := client.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, tenant)
}

func TestTenantClientServerErrorWrapsUpstream(t *testing.T) {
	client := newTenantServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, repository.ErrUpstreamUnavailable)
}

func TestTenantClientTransportFailureWrapsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewTenantClient(NewClient(srv.URL, time.Second))
	srv.Close()

	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, repository.ErrUpstreamUnavailable)
}

func TestTenantClientExistsByEmail(t *testing.T) {
	client := newTenantServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tenants/exists", r.URL.Path)
		assert.Equal(t, "jane+doe@example.com", r.URL.Query().Get("email"))
		_ = json.NewEncoder(w).Encode(map[string]bool{"exists": true})
	})

	exists, err := client.ExistsByEmail(context.Background(), "jane+doe@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTenantClientCreateDecodesResponse(t *testing.T) {
	client := newTenantServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var in entity.Tenant
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	tenant := &entity.Tenant{Email: "jane@example.com", UserID: 2}
	require.NoError(t, client.Create(context.Background(), tenant))
	assert.Equal(t, int64(7), tenant.ID)
}

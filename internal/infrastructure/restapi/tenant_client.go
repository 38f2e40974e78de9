package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

// TenantClient consumes the remote tenant service.
type TenantClient struct {
	c *Client
}

func NewTenantClient(c *Client) *TenantClient {
	return &TenantClient{c: c}
}

func (t *TenantClient) List(ctx context.Context) ([]entity.Tenant, error) {
	var tenants []entity.Tenant
	if err := t.c.get(ctx, "/api/tenants", &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (t *TenantClient) ListByUser(ctx context.Context, userID int64) ([]entity.Tenant, error) {
	var tenants []entity.Tenant
	if err := t.c.get(ctx, fmt.Sprintf("/api/tenants/user/%d", userID), &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (t *TenantClient) ListByProperty(ctx context.Context, propertyID int64) ([]entity.Tenant, error) {
	var tenants []entity.Tenant
	if err := t.c.get(ctx, fmt.Sprintf("/api/tenants/property/%d", propertyID), &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (t *TenantClient) GetByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := t.c.get(ctx, fmt.Sprintf("/api/tenants/%d", id), &tenant)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (t *TenantClient) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := t.c.get(ctx, "/api/tenants/exists?email="+url.QueryEscape(email), &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (t *TenantClient) Create(ctx context.Context, tenant *entity.Tenant) error {
	return t.c.send(ctx, http.MethodPost, "/api/tenants", tenant, tenant)
}

func (t *TenantClient) Update(ctx context.Context, tenant *entity.Tenant) error {
	return t.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/tenants/%d", tenant.ID), tenant, tenant)
}

func (t *TenantClient) Delete(ctx context.Context, id int64) error {
	return t.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/tenants/%d", id), nil, nil)
}

var _ repository.TenantSource = (*TenantClient)(nil)

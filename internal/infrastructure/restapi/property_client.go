package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

// PropertyClient consumes the remote property service.
type PropertyClient struct {
	c *Client
}

func NewPropertyClient(c *Client) *PropertyClient {
	return &PropertyClient{c: c}
}

func (p *PropertyClient) List(ctx context.Context) ([]entity.Property, error) {
	var properties []entity.Property
	if err := p.c.get(ctx, "/api/properties", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (p *PropertyClient) ListByUser(ctx context.Context, userID int64) ([]entity.Property, error) {
	var properties []entity.Property
	if err := p.c.get(ctx, fmt.Sprintf("/api/properties/user/%d", userID), &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (p *PropertyClient) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	var prop entity.Property
	err := p.c.get(ctx, fmt.Sprintf("/api/properties/%d", id), &prop)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

func (p *PropertyClient) Create(ctx context.Context, prop *entity.Property) error {
	return p.c.send(ctx, http.MethodPost, "/api/properties", prop, prop)
}

func (p *PropertyClient) Update(ctx context.Context, prop *entity.Property) error {
	return p.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/properties/%d", prop.ID), prop, prop)
}

func (p *PropertyClient) Delete(ctx context.Context, id int64) error {
	return p.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/properties/%d", id), nil, nil)
}

var _ repository.PropertySource = (*PropertyClient)(nil)

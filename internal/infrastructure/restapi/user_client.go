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

// UserClient consumes the remote user service.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := u.c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserClient) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := u.c.get(ctx, fmt.Sprintf("/api/users/%d", id), &user)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := u.c.get(ctx, "/api/users/by-username/"+url.PathEscape(username), &user)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) Create(ctx context.Context, user *entity.User) error {
	return u.c.send(ctx, http.MethodPost, "/api/users", user, user)
}

func (u *UserClient) Update(ctx context.Context, user *entity.User) error {
	return u.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), user, user)
}

var _ repository.UserSource = (*UserClient)(nil)

package repository

import (
	"context"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// UserSource is read/write access to the identity domain. It may be backed
// by local storage or by a remote service; every call can fail
// independently of the other sources.
type UserSource interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}

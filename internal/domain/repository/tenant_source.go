package repository

import (
	"context"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// TenantSource is read/write access to the tenant domain.
type TenantSource interface {
	List(ctx context.Context) ([]entity.Tenant, error)
	GetByID(ctx context.Context, id int64) (*entity.Tenant, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Tenant, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]entity.Tenant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, t *entity.Tenant) error
	Update(ctx context.Context, t *entity.Tenant) error
	Delete(ctx context.Context, id int64) error
}

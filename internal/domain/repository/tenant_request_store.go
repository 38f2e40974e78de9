package repository

import (
	"context"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// TenantRequestStore is the keyed store of tenant-request records. List
// operations return rows in creation order.
type TenantRequestStore interface {
	List(ctx context.Context) ([]entity.TenantRequest, error)
	GetByID(ctx context.Context, id int64) (*entity.TenantRequest, error)
	ListByStatus(ctx context.Context, status entity.RequestStatus) ([]entity.TenantRequest, error)
	ListByRequester(ctx context.Context, userID int64) ([]entity.TenantRequest, error)
	Create(ctx context.Context, r *entity.TenantRequest) error
	Update(ctx context.Context, r *entity.TenantRequest) error
}

package repository

import (
	"context"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// PropertySource is read/write access to the property domain.
type PropertySource interface {
	List(ctx context.Context) ([]entity.Property, error)
	GetByID(ctx context.Context, id int64) (*entity.Property, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Property, error)
	Create(ctx context.Context, p *entity.Property) error
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id int64) error
}

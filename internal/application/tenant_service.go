package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// TenantService is the CRUD surface of the tenant domain. The approval path
// in LifecycleService is the usual way tenants come into existence; direct
// registration here keeps the same email-uniqueness rule.
type TenantService struct {
	Tenants repo.TenantSource
	Index   *TenantIndexer
	Logger  *logrus.Logger
}

func NewTenantService(tenants repo.TenantSource, index *TenantIndexer, logger *logrus.Logger) *TenantService {
	return &TenantService{Tenants: tenants, Index: index, Logger: logger}
}

func (s *TenantService) List(ctx context.Context) ([]entity.Tenant, error) {
	return s.Tenants.List(ctx)
}

func (s *TenantService) Get(ctx context.Context, id int64) (*entity.Tenant, error) {
	t, err := s.Tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTenantNotFound
	}
	return t, nil
}

func (s *TenantService) ListByUser(ctx context.Context, userID int64) ([]entity.Tenant, error) {
	return s.Tenants.ListByUser(ctx, userID)
}

// Create registers a tenant directly, rejecting emails that already belong
// to one.
func (s *TenantService) Create(ctx context.Context, caller entity.Caller, t *entity.Tenant) (*entity.Tenant, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	t.Email = strings.TrimSpace(t.Email)
	exists, err := s.Tenants.ExistsByEmail(ctx, t.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}
	if err := s.Tenants.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Index.IndexTenant(ctx, t)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"tenant_id": t.ID, "email": t.Email}).Info("tenant created")
	}
	return t, nil
}

func (s *TenantService) Update(ctx context.Context, caller entity.Caller, t *entity.Tenant) (*entity.Tenant, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	existing, err := s.Tenants.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTenantNotFound
	}
	if err := s.Tenants.Update(ctx, t); err != nil {
		return nil, err
	}
	s.Index.IndexTenant(ctx, t)
	return t, nil
}

func (s *TenantService) Delete(ctx context.Context, caller entity.Caller, id int64) error {
	if !caller.IsAdmin() {
		return ErrNotAuthorized
	}
	existing, err := s.Tenants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTenantNotFound
	}
	return s.Tenants.Delete(ctx, id)
}

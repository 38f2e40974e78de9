package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// PropertyService is the CRUD surface of the property domain. The core only
// reads properties elsewhere; creation and updates happen here.
type PropertyService struct {
	Properties repo.PropertySource
	Logger     *logrus.Logger
}

func NewPropertyService(properties repo.PropertySource, logger *logrus.Logger) *PropertyService {
	return &PropertyService{Properties: properties, Logger: logger}
}

func (s *PropertyService) List(ctx context.Context) ([]entity.Property, error) {
	return s.Properties.List(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

// Create persists the property, defaulting a missing status to AVAILABLE.
func (s *PropertyService) Create(ctx context.Context, caller entity.Caller, p *entity.Property) (*entity.Property, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	if p.Status == "" {
		p.Status = entity.PropertyStatusAvailable
	}
	if err := s.Properties.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"property_id": p.ID, "name": p.Name}).Info("property created")
	}
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, caller entity.Caller, p *entity.Property) (*entity.Property, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	existing, err := s.Properties.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPropertyNotFound
	}
	if err := s.Properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, caller entity.Caller, id int64) error {
	if !caller.IsAdmin() {
		return ErrNotAuthorized
	}
	existing, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPropertyNotFound
	}
	return s.Properties.Delete(ctx, id)
}

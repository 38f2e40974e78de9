package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// DashboardService composes display-ready views across the user, property,
// and tenant domains. The three sources are independently owned and fetched
// over the network with no transactional consistency, so every call can fail
// on its own: the base list fetch of the primary entity is fatal for the
// operation, while every per-item sub-lookup degrades to a default (tenant
// count 0, owner/property name unset) instead of blanking the whole view.
type DashboardService struct {
	Users      repo.UserSource
	Properties repo.PropertySource
	Tenants    repo.TenantSource
	Lifecycle  *LifecycleService
	Index      *TenantIndexer
	Logger     *logrus.Logger
}

func NewDashboardService(users repo.UserSource, properties repo.PropertySource, tenants repo.TenantSource, lifecycle *LifecycleService, index *TenantIndexer, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Users: users, Properties: properties, Tenants: tenants, Lifecycle: lifecycle, Index: index, Logger: logger}
}

// AllProperties returns every property enriched with the owner's username
// and the number of tenants assigned to it.
func (s *DashboardService) AllProperties(ctx context.Context, caller entity.Caller) ([]entity.Property, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	properties, err := s.Properties.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.Users.List(ctx)
	if err != nil {
		s.warn(err, "user list unavailable, owner names left unset")
		users = nil
	}

	for i := range properties {
		if u := findUser(users, properties[i].UserID); u != nil {
			properties[i].OwnerName = u.Username
		}
		properties[i].TenantCount = s.tenantCount(ctx, properties[i].ID)
	}
	return properties, nil
}

// AllTenants returns every tenant enriched with the sponsoring user's
// username and the assigned property's name. An empty tenant list
// short-circuits without touching the other sources.
func (s *DashboardService) AllTenants(ctx context.Context, caller entity.Caller) ([]entity.Tenant, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	tenants, err := s.Tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return []entity.Tenant{}, nil
	}

	users, err := s.Users.List(ctx)
	if err != nil {
		s.warn(err, "user list unavailable, roommate names left unset")
		users = nil
	}
	properties, err := s.Properties.List(ctx)
	if err != nil {
		s.warn(err, "property list unavailable, property names left unset")
		properties = nil
	}

	for i := range tenants {
		if u := findUser(users, tenants[i].UserID); u != nil {
			tenants[i].RoommateOf = u.Username
		}
		if tenants[i].PropertyID != nil {
			if p := findProperty(properties, *tenants[i].PropertyID); p != nil {
				tenants[i].PropertyName = p.Name
			}
		}
	}
	return tenants, nil
}

// TenantsForUser returns the tenants sponsored by one user. A set property
// id that cannot be resolved against the property list is rendered with the
// literal "Property ID: <id>" fallback; an unset property id leaves the
// name unset.
func (s *DashboardService) TenantsForUser(ctx context.Context, userID int64) ([]entity.Tenant, error) {
	tenants, err := s.Tenants.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	properties, err := s.Properties.List(ctx)
	if err != nil {
		s.warn(err, "property list unavailable, falling back to property id labels")
		properties = nil
	}

	for i := range tenants {
		if tenants[i].PropertyID == nil {
			continue
		}
		pid := *tenants[i].PropertyID
		if p := findProperty(properties, pid); p != nil && p.Name != "" {
			tenants[i].PropertyName = p.Name
		} else {
			tenants[i].PropertyName = fmt.Sprintf("Property ID: %d", pid)
		}
	}
	return tenants, nil
}

// PropertiesForUser returns the union of the properties the user owns and
// the properties hosting at least one of the user's tenants, deduplicated by
// id with owned entries taking precedence. Each property carries a
// best-effort tenant count.
func (s *DashboardService) PropertiesForUser(ctx context.Context, userID int64) ([]entity.Property, error) {
	owned, err := s.Properties.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tenants, err := s.Tenants.ListByUser(ctx, userID)
	if err != nil {
		s.warn(err, "tenant list unavailable, returning owned properties only")
		tenants = nil
	}

	seen := make(map[int64]bool, len(owned))
	result := make([]entity.Property, 0, len(owned))
	for _, p := range owned {
		if !seen[p.ID] {
			seen[p.ID] = true
			result = append(result, p)
		}
	}

	if ids := distinctPropertyIDs(tenants); len(ids) > 0 {
		all, err := s.Properties.List(ctx)
		if err != nil {
			s.warn(err, "property list unavailable, tenant-hosting properties omitted")
			all = nil
		}
		for _, id := range ids {
			if seen[id] {
				continue
			}
			if p := findProperty(all, id); p != nil {
				seen[id] = true
				result = append(result, *p)
			}
		}
	}

	for i := range result {
		result[i].TenantCount = s.tenantCount(ctx, result[i].ID)
	}
	return result, nil
}

// PendingRequests is a passthrough to the lifecycle manager, no enrichment.
func (s *DashboardService) PendingRequests(ctx context.Context, caller entity.Caller) ([]entity.TenantRequest, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	return s.Lifecycle.ListPending(ctx)
}

// RequestsForUser is a passthrough to the lifecycle manager, no enrichment.
func (s *DashboardService) RequestsForUser(ctx context.Context, userID int64) ([]entity.TenantRequest, error) {
	return s.Lifecycle.ListByRequester(ctx, userID)
}

// SearchTenants queries the tenant search index.
func (s *DashboardService) SearchTenants(ctx context.Context, caller entity.Caller, q string, size int) ([]map[string]any, error) {
	if !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	return s.Index.Search(ctx, q, size)
}

// tenantCount resolves the number of tenants assigned to a property; a
// failed lookup degrades to zero for that property only.
func (s *DashboardService) tenantCount(ctx context.Context, propertyID int64) int {
	tenants, err := s.Tenants.ListByProperty(ctx, propertyID)
	if err != nil {
		s.warn(err, "tenant count unavailable, defaulting to zero")
		return 0
	}
	return len(tenants)
}

func (s *DashboardService) warn(err error, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).Warn(msg)
	}
}

func findUser(users []entity.User, id int64) *entity.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func findProperty(properties []entity.Property, id int64) *entity.Property {
	for i := range properties {
		if properties[i].ID == id {
			return &properties[i]
		}
	}
	return nil
}

func distinctPropertyIDs(tenants []entity.Tenant) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for i := range tenants {
		if tenants[i].PropertyID == nil {
			continue
		}
		id := *tenants[i].PropertyID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

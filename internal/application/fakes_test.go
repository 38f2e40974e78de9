package application

import (
	"context"
	"strings"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// In-memory sources for service tests. Each embeds per-method error hooks so
// individual lookups can be failed to exercise the degradation paths.

type fakeRequestStore struct {
	rows   []entity.TenantRequest
	nextID int64

	listErr   error
	getErr    error
	createErr error
	updateErr error
}

func (f *fakeRequestStore) List(ctx context.Context) ([]entity.TenantRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.TenantRequest, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRequestStore) GetByID(ctx context.Context, id int64) (*entity.TenantRequest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			r := f.rows[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestStore) ListByStatus(ctx context.Context, status entity.RequestStatus) ([]entity.TenantRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.TenantRequest
	for i := range f.rows {
		if f.rows[i].Status == status {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeRequestStore) ListByRequester(ctx context.Context, userID int64) ([]entity.TenantRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.TenantRequest
	for i := range f.rows {
		if f.rows[i].RequestedByUserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeRequestStore) Create(ctx context.Context, r *entity.TenantRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	r.ID = f.nextID
	f.rows = append(f.rows, *r)
	return nil
}

func (f *fakeRequestStore) Update(ctx context.Context, r *entity.TenantRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == r.ID {
			f.rows[i] = *r
			return nil
		}
	}
	return nil
}

type fakeTenantSource struct {
	rows   []entity.Tenant
	nextID int64

	listErr          error
	listByUserErr    error
	listByPropErr    error
	listByPropErrFor map[int64]error
	existsErr        error
	createErr        error
	updateErr        error
}

func (f *fakeTenantSource) List(ctx context.Context) ([]entity.Tenant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Tenant, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeTenantSource) GetByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			t := f.rows[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTenantSource) ListByUser(ctx context.Context, userID int64) ([]entity.Tenant, error) {
	if f.listByUserErr != nil {
		return nil, f.listByUserErr
	}
	var out []entity.Tenant
	for i := range f.rows {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeTenantSource) ListByProperty(ctx context.Context, propertyID int64) ([]entity.Tenant, error) {
	if f.listByPropErr != nil {
		return nil, f.listByPropErr
	}
	if err, ok := f.listByPropErrFor[propertyID]; ok {
		return nil, err
	}
	var out []entity.Tenant
	for i := range f.rows {
		if f.rows[i].PropertyID != nil && *f.rows[i].PropertyID == propertyID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeTenantSource) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for i := range f.rows {
		if strings.EqualFold(f.rows[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTenantSource) Create(ctx context.Context, t *entity.Tenant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	t.ID = f.nextID
	f.rows = append(f.rows, *t)
	return nil
}

func (f *fakeTenantSource) Update(ctx context.Context, t *entity.Tenant) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == t.ID {
			f.rows[i] = *t
			return nil
		}
	}
	return nil
}

func (f *fakeTenantSource) Delete(ctx context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserSource struct {
	rows    []entity.User
	nextID  int64
	listErr error
}

func (f *fakeUserSource) List(ctx context.Context) ([]entity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.User, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeUserSource) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserSource) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for i := range f.rows {
		if f.rows[i].Username == username {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserSource) Create(ctx context.Context, u *entity.User) error {
	f.nextID++
	u.ID = f.nextID
	f.rows = append(f.rows, *u)
	return nil
}

func (f *fakeUserSource) Update(ctx context.Context, u *entity.User) error {
	for i := range f.rows {
		if f.rows[i].ID == u.ID {
			f.rows[i] = *u
			return nil
		}
	}
	return nil
}

type fakePropertySource struct {
	rows    []entity.Property
	nextID  int64
	listErr error
}

func (f *fakePropertySource) List(ctx context.Context) ([]entity.Property, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Property, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakePropertySource) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			p := f.rows[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePropertySource) ListByUser(ctx context.Context, userID int64) ([]entity.Property, error) {
	var out []entity.Property
	for i := range f.rows {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakePropertySource) Create(ctx context.Context, p *entity.Property) error {
	f.nextID++
	p.ID = f.nextID
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePropertySource) Update(ctx context.Context, p *entity.Property) error {
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = *p
			return nil
		}
	}
	return nil
}

func (f *fakePropertySource) Delete(ctx context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePublisher struct {
	events []entity.TenantRequestEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, ev *entity.TenantRequestEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *ev)
	return nil
}

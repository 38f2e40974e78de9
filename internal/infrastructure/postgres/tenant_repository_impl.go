package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

type TenantRepository struct {
	pool *pgxpool.Pool
}

func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

const tenantColumns = `id, first_name, last_name, email, phone, user_id, property_id, created_at, updated_at`

func scanTenantRow(row pgx.Row, t *entity.Tenant) error {
	return row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.UserID,
		&t.PropertyID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) queryTenants(ctx context.Context, sql string, args ...any) ([]entity.Tenant, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []entity.Tenant
	for rows.Next() {
		t := entity.Tenant{}
		if err := scanTenantRow(rows, &t); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *TenantRepository) List(ctx context.Context) ([]entity.Tenant, error) {
	return r.queryTenants(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY id`)
}

func (r *TenantRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Tenant, error) {
	return r.queryTenants(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *TenantRepository) ListByProperty(ctx context.Context, propertyID int64) ([]entity.Tenant, error) {
	return r.queryTenants(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE property_id = $1 ORDER BY id`, propertyID)
}

func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	t := &entity.Tenant{}
	row := r.pool.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
	if err := scanTenantRow(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TenantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tenants WHERE lower(email) = lower($1))`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *entity.Tenant) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tenants (first_name, last_name, email, phone, user_id, property_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.FirstName, t.LastName, t.Email, t.Phone, t.UserID, t.PropertyID)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) Update(ctx context.Context, t *entity.Tenant) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE tenants
		SET first_name = $1, last_name = $2, email = $3, phone = $4, user_id = $5,
			property_id = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, t.FirstName, t.LastName, t.Email, t.Phone, t.UserID, t.PropertyID, t.ID)
	return row.Scan(&t.UpdatedAt)
}

func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	return err
}

var _ repository.TenantSource = (*TenantRepository)(nil)

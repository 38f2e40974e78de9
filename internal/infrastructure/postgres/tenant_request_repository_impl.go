package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

type TenantRequestRepository struct {
	pool *pgxpool.Pool
}

func NewTenantRequestRepository(pool *pgxpool.Pool) *TenantRequestRepository {
	return &TenantRequestRepository{pool: pool}
}

const requestColumns = `id, first_name, last_name, email, phone, requested_by_user_id, status, created_at, updated_at`

func scanRequestRow(row pgx.Row, r *entity.TenantRequest) error {
	return row.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.Phone,
		&r.RequestedByUserID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
}

func (r *TenantRequestRepository) queryRequests(ctx context.Context, sql string, args ...any) ([]entity.TenantRequest, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entity.TenantRequest
	for rows.Next() {
		req := entity.TenantRequest{}
		if err := scanRequestRow(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *TenantRequestRepository) List(ctx context.Context) ([]entity.TenantRequest, error) {
	return r.queryRequests(ctx, `SELECT `+requestColumns+` FROM tenant_requests ORDER BY id`)
}

func (r *TenantRequestRepository) ListByStatus(ctx context.Context, status entity.RequestStatus) ([]entity.TenantRequest, error) {
	return r.queryRequests(ctx, `SELECT `+requestColumns+` FROM tenant_requests WHERE status = $1 ORDER BY id`, status)
}

func (r *TenantRequestRepository) ListByRequester(ctx context.Context, userID int64) ([]entity.TenantRequest, error) {
	return r.queryRequests(ctx, `SELECT `+requestColumns+` FROM tenant_requests WHERE requested_by_user_id = $1 ORDER BY id`, userID)
}

func (r *TenantRequestRepository) GetByID(ctx context.Context, id int64) (*entity.TenantRequest, error) {
	req := &entity.TenantRequest{}
	row := r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM tenant_requests WHERE id = $1`, id)
	if err := scanRequestRow(row, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

func (r *TenantRequestRepository) Create(ctx context.Context, req *entity.TenantRequest) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tenant_requests (first_name, last_name, email, phone, requested_by_user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, req.FirstName, req.LastName, req.Email, req.Phone, req.RequestedByUserID, req.Status)
	return row.Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *TenantRequestRepository) Update(ctx context.Context, req *entity.TenantRequest) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE tenant_requests
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			requested_by_user_id = $5, status = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, req.FirstName, req.LastName, req.Email, req.Phone, req.RequestedByUserID, req.Status, req.ID)
	return row.Scan(&req.UpdatedAt)
}

var _ repository.TenantRequestStore = (*TenantRequestRepository)(nil)

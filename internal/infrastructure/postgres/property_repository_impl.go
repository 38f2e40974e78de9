package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

const propertyColumns = `id, name, address, city, state, zip_code, type, bedrooms, bathrooms,
	rent_amount, status, description, user_id, created_at, updated_at`

func scanPropertyRow(row pgx.Row, p *entity.Property) error {
	return row.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Type,
		&p.Bedrooms, &p.Bathrooms, &p.RentAmount, &p.Status, &p.Description, &p.UserID,
		&p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) queryProperties(ctx context.Context, sql string, args ...any) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []entity.Property
	for rows.Next() {
		p := entity.Property{}
		if err := scanPropertyRow(rows, &p); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
}

func (r *PropertyRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	p := &entity.Property{}
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	if err := scanPropertyRow(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (name, address, city, state, zip_code, type, bedrooms, bathrooms,
			rent_amount, status, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Address, p.City, p.State, p.ZipCode, p.Type, p.Bedrooms, p.Bathrooms,
		p.RentAmount, p.Status, p.Description, p.UserID)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE properties
		SET name = $1, address = $2, city = $3, state = $4, zip_code = $5, type = $6,
			bedrooms = $7, bathrooms = $8, rent_amount = $9, status = $10, description = $11,
			user_id = $12, updated_at = now()
		WHERE id = $13
		RETURNING updated_at
	`, p.Name, p.Address, p.City, p.State, p.ZipCode, p.Type, p.Bedrooms, p.Bathrooms,
		p.RentAmount, p.Status, p.Description, p.UserID, p.ID)
	return row.Scan(&p.UpdatedAt)
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}

var _ repository.PropertySource = (*PropertyRepository)(nil)

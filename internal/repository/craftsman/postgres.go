package craftsman

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Craftsman, error) {
	const q = `
SELECT id::text, name, profession, COALESCE(description, ''), image, hourly_rate_cents, COALESCE(phone, ''), COALESCE(area, ''), created_at
FROM craftsmen
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Craftsman
	for rows.Next() {
		var c domain.Craftsman
		if err := rows.Scan(&c.ID, &c.Name, &c.Profession, &c.Description, &c.Image, &c.HourlyRateCents, &c.Phone, &c.Area, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Craftsman) (*domain.Craftsman, error) {
	const q = `
INSERT INTO craftsmen (name, profession, description, image, hourly_rate_cents, phone, area)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''))
RETURNING id::text, created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.Name, c.Profession, c.Description, c.Image, c.HourlyRateCents, c.Phone, c.Area).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Craftsman) (*domain.Craftsman, error) {
	const q = `
UPDATE craftsmen
SET name = $2, profession = $3, description = NULLIF($4, ''), image = $5, hourly_rate_cents = $6,
    phone = NULLIF($7, ''), area = NULLIF($8, '')
WHERE id = $1
RETURNING created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Profession, c.Description, c.Image, c.HourlyRateCents, c.Phone, c.Area).
		Scan(&out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM craftsmen WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

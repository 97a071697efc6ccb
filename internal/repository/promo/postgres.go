package promo

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

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]domain.Promo, error) {
	q := `
SELECT id::text, title, COALESCE(description, ''), image, active, created_at
FROM promos
`
	if activeOnly {
		q += "WHERE active\n"
	}
	q += "ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Promo
	for rows.Next() {
		var p domain.Promo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Promo) (*domain.Promo, error) {
	const q = `
INSERT INTO promos (title, description, image, active)
VALUES ($1, NULLIF($2, ''), $3, $4)
RETURNING id::text, created_at
`
	out := p
	if err := r.pool.QueryRow(ctx, q, p.Title, p.Description, p.Image, p.Active).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Promo) (*domain.Promo, error) {
	const q = `
UPDATE promos
SET title = $2, description = NULLIF($3, ''), image = $4, active = $5
WHERE id = $1
RETURNING created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.Title, p.Description, p.Image, p.Active).Scan(&out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

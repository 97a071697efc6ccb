package doctor

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	const q = `
SELECT id::text, name, specialty, COALESCE(education, ''), image, price_cents, COALESCE(rating, 0), COALESCE(reviews, 0), created_at
FROM doctors
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Education, &d.Image, &d.PriceCents, &d.Rating, &d.Reviews, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, d domain.Doctor) (*domain.Doctor, error) {
	const q = `
INSERT INTO doctors (name, specialty, education, image, price_cents, rating, reviews)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
RETURNING id::text, created_at
`
	out := d
	err := r.pool.QueryRow(ctx, q, d.Name, d.Specialty, d.Education, d.Image, d.PriceCents, d.Rating, d.Reviews).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, d domain.Doctor) (*domain.Doctor, error) {
	const q = `
UPDATE doctors
SET name = $2, specialty = $3, education = NULLIF($4, ''), image = $5, price_cents = $6, rating = $7, reviews = $8
WHERE id = $1
RETURNING created_at
`
	out := d
	err := r.pool.QueryRow(ctx, q, d.ID, d.Name, d.Specialty, d.Education, d.Image, d.PriceCents, d.Rating, d.Reviews).
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

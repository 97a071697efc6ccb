package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const selectColumns = `
SELECT id::text, name, image, COALESCE(description, ''), price_cents, restaurant_id::text, created_at
FROM products
`

func (r *postgresRepo) ListStandalone(ctx context.Context) ([]domain.Product, error) {
	const q = selectColumns + `
WHERE restaurant_id IS NULL
ORDER BY created_at DESC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Product, error) {
	const q = selectColumns + `
WHERE restaurant_id = $1
ORDER BY created_at ASC
`
	return r.list(ctx, q, restaurantID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = selectColumns + `
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Image, &p.Description, &p.PriceCents, &p.RestaurantID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, image, description, price_cents, restaurant_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Name, p.Image, p.Description, p.PriceCents, p.RestaurantID).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, image = $3, description = NULLIF($4, ''), price_cents = $5, restaurant_id = $6
WHERE id = $1
RETURNING created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Image, p.Description, p.PriceCents, p.RestaurantID).
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, image, description, price_cents, restaurant_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (restaurant_id, name) DO UPDATE SET
    image = EXCLUDED.image,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Name, p.Image, p.Description, p.PriceCents, p.RestaurantID).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted name=%q id=%s", out.Name, out.ID)
	return &out, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Description, &p.PriceCents, &p.RestaurantID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

package restaurant

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
SELECT r.id::text, r.name, r.image, COALESCE(r.description, ''), COALESCE(r.rating, 0), COALESCE(r.reviews, 0),
       COALESCE(r.delivery_time, ''), COALESCE(r.min_order_cents, 0), r.created_at,
       COALESCE(array_agg(rc.category_name ORDER BY rc.category_name) FILTER (WHERE rc.category_name IS NOT NULL), '{}')
FROM restaurants r
LEFT JOIN restaurant_categories rc ON rc.restaurant_id = r.id
`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Restaurant, error) {
	const q = selectColumns + `
GROUP BY r.id
ORDER BY r.created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("restaurant repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rest)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("restaurant repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const q = selectColumns + `
WHERE r.id = $1
GROUP BY r.id
`
	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		r.logger.Printf("restaurant repo: get id=%s not found", id)
		return nil, domain.ErrNotFound
	}
	return scanRestaurant(rows)
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Restaurant) (*domain.Restaurant, error) {
	const q = `
INSERT INTO restaurants (name, image, description, rating, reviews, delivery_time, min_order_cents)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7)
RETURNING id::text, created_at
`
	out := in
	err := r.pool.QueryRow(ctx, q, in.Name, in.Image, in.Description, in.Rating, in.Reviews, in.DeliveryTime, in.MinOrderCents).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("restaurant repo: create name=%q error=%v", in.Name, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, in domain.Restaurant) (*domain.Restaurant, error) {
	const q = `
UPDATE restaurants
SET name = $2, image = $3, description = NULLIF($4, ''), rating = $5, reviews = $6,
    delivery_time = NULLIF($7, ''), min_order_cents = $8
WHERE id = $1
RETURNING created_at
`
	out := in
	err := r.pool.QueryRow(ctx, q, in.ID, in.Name, in.Image, in.Description, in.Rating, in.Reviews, in.DeliveryTime, in.MinOrderCents).
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ReplaceCategories(ctx context.Context, restaurantID string, names []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM restaurant_categories WHERE restaurant_id = $1`, restaurantID); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := tx.Exec(ctx, `
INSERT INTO restaurant_categories (restaurant_id, category_name)
VALUES ($1, $2)
ON CONFLICT (restaurant_id, category_name) DO NOTHING
`, restaurantID, name); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanRestaurant(rows pgx.Rows) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := rows.Scan(
		&rest.ID,
		&rest.Name,
		&rest.Image,
		&rest.Description,
		&rest.Rating,
		&rest.Reviews,
		&rest.DeliveryTime,
		&rest.MinOrderCents,
		&rest.CreatedAt,
		&rest.Categories,
	); err != nil {
		return nil, err
	}
	return &rest, nil
}

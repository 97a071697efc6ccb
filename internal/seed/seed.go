package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type restaurantSeed struct {
	Name          string
	Image         string
	Description   string
	Rating        float64
	Reviews       int
	DeliveryTime  string
	MinOrderCents int64
	Categories    []string
	Menu          []productSeed
}

type productSeed struct {
	Name        string
	Image       string
	Description string
	PriceCents  int64
}

// Apply inserts demo data for manual testing plus the initial back-office
// account. It is idempotent: rows are matched by display name (email for
// admins) and skipped when already present.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	categories := [][4]string{
		{"المطاعم", "🍔", "#FF6600", "/restaurants"},
		{"الصيدليات", "💊", "#00A651", "/pharmacies"},
		{"السوبر ماركت", "🛒", "#0072BC", "/supermarkets"},
		{"الأطباء", "🩺", "#9B51E0", "/doctors"},
		{"الصنايعية", "🔧", "#F2994A", "/handymen"},
		{"الوظائف", "💼", "#2D9CDB", "/jobs"},
	}
	for _, c := range categories {
		if err := ensureCategory(ctx, pool, c[0], c[1], c[2], c[3]); err != nil {
			return fmt.Errorf("ensure category %s: %w", c[0], err)
		}
	}

	restaurants := []restaurantSeed{
		{
			Name:          "برجر كينج",
			Image:         "/uploads/seed/burger-king.jpg",
			Rating:        4.5,
			Reviews:       230,
			DeliveryTime:  "30-45 دقيقة",
			MinOrderCents: 5000,
			Categories:    []string{"برجر", "وجبات سريعة"},
			Menu: []productSeed{
				{Name: "برجر لحم", Image: "/uploads/seed/beef-burger.jpg", PriceCents: 9000},
				{Name: "بطاطس", Image: "/uploads/seed/fries.jpg", PriceCents: 3500},
			},
		},
		{
			Name:          "بيتزا هت",
			Image:         "/uploads/seed/pizza-hut.jpg",
			Rating:        4.2,
			Reviews:       180,
			DeliveryTime:  "40-55 دقيقة",
			MinOrderCents: 7500,
			Categories:    []string{"بيتزا", "إيطالي"},
			Menu: []productSeed{
				{Name: "بيتزا مارجريتا", Image: "/uploads/seed/margherita.jpg", PriceCents: 12000},
			},
		},
	}
	for _, r := range restaurants {
		if err := ensureRestaurant(ctx, pool, r); err != nil {
			return fmt.Errorf("ensure restaurant %s: %w", r.Name, err)
		}
	}

	if err := ensureDoctor(ctx, pool, "د. محمد صلاح", "باطنة", "/uploads/seed/doctor.jpg", 20000); err != nil {
		return fmt.Errorf("ensure doctor: %w", err)
	}
	if err := ensureCraftsman(ctx, pool, "عم حسن", "سباك", "/uploads/seed/plumber.jpg", 5000); err != nil {
		return fmt.Errorf("ensure craftsman: %w", err)
	}
	if err := ensurePromo(ctx, pool, "خصم الافتتاح", "/uploads/seed/promo.jpg"); err != nil {
		return fmt.Errorf("ensure promo: %w", err)
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	email := envOrDefault("ADMIN_EMAIL", "admin@elfahd.app")
	password := envOrDefault("ADMIN_PASSWORD", "change-me-now")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO admins (email, password_hash)
VALUES ($1, $2)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, icon, color, link string) error {
	const q = `
INSERT INTO categories (name, icon, color, link)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, name, icon, color, link)
	return err
}

func ensureRestaurant(ctx context.Context, pool *pgxpool.Pool, r restaurantSeed) error {
	const q = `
WITH existing AS (
	SELECT id FROM restaurants WHERE name = $1
), inserted AS (
	INSERT INTO restaurants (name, image, description, rating, reviews, delivery_time, min_order_cents)
	SELECT $1, $2, NULLIF($3, ''), $4, $5, $6, $7
	WHERE NOT EXISTS (SELECT 1 FROM existing)
	RETURNING id
)
SELECT id::text FROM inserted
UNION ALL
SELECT id::text FROM existing
`
	var id string
	if err := pool.QueryRow(ctx, q, r.Name, r.Image, r.Description, r.Rating, r.Reviews, r.DeliveryTime, r.MinOrderCents).Scan(&id); err != nil {
		return err
	}

	for _, tag := range r.Categories {
		if _, err := pool.Exec(ctx, `
INSERT INTO restaurant_categories (restaurant_id, category_name)
VALUES ($1, $2)
ON CONFLICT (restaurant_id, category_name) DO NOTHING
`, id, tag); err != nil {
			return err
		}
	}

	for _, p := range r.Menu {
		if _, err := pool.Exec(ctx, `
INSERT INTO products (name, image, description, price_cents, restaurant_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (restaurant_id, name) DO UPDATE SET
    image = EXCLUDED.image,
    price_cents = EXCLUDED.price_cents
`, p.Name, p.Image, p.Description, p.PriceCents, id); err != nil {
			return err
		}
	}

	return nil
}

func ensureDoctor(ctx context.Context, pool *pgxpool.Pool, name, specialty, image string, priceCents int64) error {
	const q = `
INSERT INTO doctors (name, specialty, image, price_cents, rating, reviews)
SELECT $1, $2, $3, $4, 4.8, 120
WHERE NOT EXISTS (SELECT 1 FROM doctors WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, name, specialty, image, priceCents)
	return err
}

func ensureCraftsman(ctx context.Context, pool *pgxpool.Pool, name, profession, image string, rateCents int64) error {
	const q = `
INSERT INTO craftsmen (name, profession, image, hourly_rate_cents)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM craftsmen WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, name, profession, image, rateCents)
	return err
}

func ensurePromo(ctx context.Context, pool *pgxpool.Pool, title, image string) error {
	const q = `
INSERT INTO promos (title, image, active)
SELECT $1, $2, true
WHERE NOT EXISTS (SELECT 1 FROM promos WHERE title = $1)
`
	_, err := pool.Exec(ctx, q, title, image)
	return err
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

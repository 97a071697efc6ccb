package product

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	// ListStandalone returns shelf products not tied to a restaurant.
	ListStandalone(ctx context.Context) ([]domain.Product, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// Upsert inserts or refreshes a product keyed by (restaurant_id, name).
	// Used by the menu importer.
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

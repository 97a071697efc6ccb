package restaurant

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error)
	Update(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
	// ReplaceCategories swaps the restaurant's category tags for the given
	// set.
	ReplaceCategories(ctx context.Context, restaurantID string, names []string) error
}

package promo

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	// List returns promos newest-first; activeOnly restricts to banners
	// currently shown on the slider.
	List(ctx context.Context, activeOnly bool) ([]domain.Promo, error)
	Create(ctx context.Context, p domain.Promo) (*domain.Promo, error)
	Update(ctx context.Context, p domain.Promo) (*domain.Promo, error)
	Delete(ctx context.Context, id string) error
}

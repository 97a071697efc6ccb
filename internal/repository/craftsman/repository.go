package craftsman

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Craftsman, error)
	Create(ctx context.Context, c domain.Craftsman) (*domain.Craftsman, error)
	Update(ctx context.Context, c domain.Craftsman) (*domain.Craftsman, error)
	Delete(ctx context.Context, id string) error
}

package doctor

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	Create(ctx context.Context, d domain.Doctor) (*domain.Doctor, error)
	Update(ctx context.Context, d domain.Doctor) (*domain.Doctor, error)
	Delete(ctx context.Context, id string) error
}

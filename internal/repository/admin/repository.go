package admin

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// Create inserts an account; domain.ErrAlreadyExists on a duplicate
	// email.
	Create(ctx context.Context, a domain.Admin) (*domain.Admin, error)
}

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	productrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	PriceCents   int64   `json:"priceCents"`
	RestaurantID *string `json:"restaurantId"`
}

// ListShelf returns standalone products (pharmacy/supermarket shelves)
// matching the substring query.
func (s *Service) ListShelf(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := s.repo.ListStandalone(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}
	var out []domain.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *p)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.repo.Update(ctx, *p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Image) == "" {
		return nil, fmt.Errorf("%w: image required", domain.ErrInvalidInput)
	}
	if in.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return &domain.Product{
		Name:         name,
		Image:        in.Image,
		Description:  in.Description,
		PriceCents:   in.PriceCents,
		RestaurantID: in.RestaurantID,
	}, nil
}

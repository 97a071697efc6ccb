package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	productrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/product"
	restaurantrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/restaurant"
)

type Service struct {
	repo     restaurantrepo.Repository
	products productrepo.Repository
}

func New(repo restaurantrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Detail is a restaurant page: the restaurant, its category tags and its
// menu.
type Detail struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Products   []domain.Product  `json:"products"`
}

type Input struct {
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	DeliveryTime  string   `json:"deliveryTime"`
	MinOrderCents int64    `json:"minOrderCents"`
	Categories    []string `json:"categories"`
}

// List returns restaurants matching the storefront's uniform filter: a
// case-insensitive substring match on the name plus equality on a category
// tag. Empty query and category match everything.
func (s *Service) List(ctx context.Context, query, category string) ([]domain.Restaurant, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	var out []domain.Restaurant
	for _, r := range all {
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		if category != "" && !hasCategory(r.Categories, category) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Get returns the restaurant detail with its real category tags and menu;
// no synthetic menu sections are invented for restaurants without tags.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Restaurant: *r, Products: products}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Restaurant, error) {
	r, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, *r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceCategories(ctx, created.ID, in.Categories); err != nil {
		return nil, err
	}
	created.Categories = in.Categories
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Restaurant, error) {
	r, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	r.ID = id
	updated, err := s.repo.Update(ctx, *r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceCategories(ctx, id, in.Categories); err != nil {
		return nil, err
	}
	updated.Categories = in.Categories
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (*domain.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Image) == "" {
		return nil, fmt.Errorf("%w: image required", domain.ErrInvalidInput)
	}
	return &domain.Restaurant{
		Name:          name,
		Image:         in.Image,
		Description:   in.Description,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
		DeliveryTime:  in.DeliveryTime,
		MinOrderCents: in.MinOrderCents,
	}, nil
}

func hasCategory(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}

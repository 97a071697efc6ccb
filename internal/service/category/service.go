package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	categoryrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Link  string `json:"link"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Category, error) {
	c, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *c)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Category, error) {
	c, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.repo.Update(ctx, *c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Link) == "" {
		return nil, fmt.Errorf("%w: link required", domain.ErrInvalidInput)
	}
	return &domain.Category{
		Name:  name,
		Icon:  in.Icon,
		Color: in.Color,
		Link:  strings.TrimSpace(in.Link),
	}, nil
}

package promo

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	promorepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/promo"
)

type Service struct {
	repo promorepo.Repository
}

func New(repo promorepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
}

// Active returns the banners currently shown on the home slider.
func (s *Service) Active(ctx context.Context) ([]domain.Promo, error) {
	return s.repo.List(ctx, true)
}

// List returns every promo for the back-office table.
func (s *Service) List(ctx context.Context) ([]domain.Promo, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Promo, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *p)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Promo, error) {
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

func fromInput(in Input) (*domain.Promo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Image) == "" {
		return nil, fmt.Errorf("%w: image required", domain.ErrInvalidInput)
	}
	return &domain.Promo{
		Title:       title,
		Description: in.Description,
		Image:       in.Image,
		Active:      in.Active,
	}, nil
}

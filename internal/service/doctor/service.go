package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	doctorrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/doctor"
)

type Service struct {
	repo doctorrepo.Repository
}

func New(repo doctorrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Education  string  `json:"education"`
	Image      string  `json:"image"`
	PriceCents int64   `json:"priceCents"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
}

// List applies the uniform listing filter: substring on name, equality on
// specialty.
func (s *Service) List(ctx context.Context, query, specialty string) ([]domain.Doctor, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	specialty = strings.TrimSpace(specialty)

	var out []domain.Doctor
	for _, d := range all {
		if query != "" && !strings.Contains(strings.ToLower(d.Name), query) {
			continue
		}
		if specialty != "" && !strings.EqualFold(d.Specialty, specialty) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Doctor, error) {
	d, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *d)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Doctor, error) {
	d, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return s.repo.Update(ctx, *d)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (*domain.Doctor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Specialty) == "" {
		return nil, fmt.Errorf("%w: specialty required", domain.ErrInvalidInput)
	}
	return &domain.Doctor{
		Name:       name,
		Specialty:  strings.TrimSpace(in.Specialty),
		Education:  in.Education,
		Image:      in.Image,
		PriceCents: in.PriceCents,
		Rating:     in.Rating,
		Reviews:    in.Reviews,
	}, nil
}

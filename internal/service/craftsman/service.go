package craftsman

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	craftsmanrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/craftsman"
)

type Service struct {
	repo craftsmanrepo.Repository
}

func New(repo craftsmanrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name            string `json:"name"`
	Profession      string `json:"profession"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	HourlyRateCents int64  `json:"hourlyRateCents"`
	Phone           string `json:"phone"`
	Area            string `json:"area"`
}

// List applies the uniform listing filter: substring on name, equality on
// profession.
func (s *Service) List(ctx context.Context, query, profession string) ([]domain.Craftsman, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	profession = strings.TrimSpace(profession)

	var out []domain.Craftsman
	for _, c := range all {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		if profession != "" && !strings.EqualFold(c.Profession, profession) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Craftsman, error) {
	c, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *c)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Craftsman, error) {
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

func fromInput(in Input) (*domain.Craftsman, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Profession) == "" {
		return nil, fmt.Errorf("%w: profession required", domain.ErrInvalidInput)
	}
	return &domain.Craftsman{
		Name:            name,
		Profession:      strings.TrimSpace(in.Profession),
		Description:     in.Description,
		Image:           in.Image,
		HourlyRateCents: in.HourlyRateCents,
		Phone:           in.Phone,
		Area:            in.Area,
	}, nil
}

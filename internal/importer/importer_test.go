package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type stubProductWriter struct {
	upserted []domain.Product
	err      error
}

func (s *stubProductWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserted = append(s.upserted, p)
	return &p, nil
}

func TestCSVImporterRun(t *testing.T) {
	csvData := `name,price,description,image
برجر كلاسيك,120,لحم بقري مع جبنة,https://img.example/burger.jpg
بطاطس كبيرة,45.5,,https://img.example/fries.jpg

كولا,20.25,علبة باردة,
`

	repo := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, "rest-1")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("Run() imported = %d, want 3", count)
	}
	if len(repo.upserted) != 3 {
		t.Fatalf("upserted %d products, want 3", len(repo.upserted))
	}

	first := repo.upserted[0]
	if first.Name != "برجر كلاسيك" {
		t.Errorf("name = %q", first.Name)
	}
	if first.PriceCents != 12000 {
		t.Errorf("price cents = %d, want 12000", first.PriceCents)
	}
	if first.RestaurantID == nil || *first.RestaurantID != "rest-1" {
		t.Errorf("restaurant id = %v, want rest-1", first.RestaurantID)
	}

	if got := repo.upserted[1].PriceCents; got != 4550 {
		t.Errorf("fractional price cents = %d, want 4550", got)
	}
	if got := repo.upserted[2].PriceCents; got != 2025 {
		t.Errorf("fractional price cents = %d, want 2025", got)
	}
}

func TestCSVImporterColumnOrder(t *testing.T) {
	csvData := `price,image,name
30,,شاي
`

	repo := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, "rest-2")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("Run() imported = %d, want 1", count)
	}
	if repo.upserted[0].Name != "شاي" {
		t.Errorf("name = %q", repo.upserted[0].Name)
	}
	if repo.upserted[0].PriceCents != 3000 {
		t.Errorf("price cents = %d", repo.upserted[0].PriceCents)
	}
}

func TestCSVImporterBadPrice(t *testing.T) {
	csvData := `name,price
كنافة,cheap
`

	repo := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, "rest-3")

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("Run() expected error for invalid price")
	}
	if len(repo.upserted) != 0 {
		t.Errorf("upserted %d products, want 0", len(repo.upserted))
	}
}

func TestCSVImporterMissingName(t *testing.T) {
	csvData := `name,price
,15
`

	repo := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, "rest-4")

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("Run() expected error for missing name")
	}
}

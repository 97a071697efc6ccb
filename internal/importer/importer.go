package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads a restaurant's menu from a CSV export
// (columns: name, price, description, image; price in pounds, decimals
// allowed). Rows are upserted by (restaurant, name) so re-running an
// import refreshes prices instead of duplicating items.
type CSVImporter struct {
	reader       *csv.Reader
	productRepo  ProductWriter
	restaurantID string
}

func NewCSVImporter(r io.Reader, repo ProductWriter, restaurantID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:       csvr,
		productRepo:  repo,
		restaurantID: restaurantID,
	}
}

type csvRow struct {
	Name  string
	Desc  string
	Image string
	Cents int64
}

// Run parses CSV rows and upserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	restaurantID := i.restaurantID
	p := domain.Product{
		Name:         row.Name,
		Image:        row.Image,
		Description:  row.Desc,
		PriceCents:   row.Cents,
		RestaurantID: &restaurantID,
	}

	if _, err := i.productRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	name := pick(record, index, "name")
	if name == "" {
		// Blank separator rows are allowed.
		if strings.TrimSpace(strings.Join(record, "")) == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("row missing name: %v", record)
	}

	priceStr := pick(record, index, "price")
	cents, err := parsePriceCents(priceStr)
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", name, err)
	}

	return &csvRow{
		Name:  name,
		Desc:  pick(record, index, "description"),
		Image: pick(record, index, "image"),
		Cents: cents,
	}, nil
}

func parsePriceCents(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("price required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	return int64(math.Round(v * 100)), nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

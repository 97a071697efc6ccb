package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/migrate"
	productrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/product"
	restaurantrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/restaurant"
	productsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/product"
	restaurantsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/restaurant"
)

func menuItem(restaurantID, name string, cents int64) domain.Product {
	return domain.Product{
		Name:         name,
		Image:        "https://img.example/item.jpg",
		PriceCents:   cents,
		RestaurantID: &restaurantID,
	}
}

// Runs against a throwaway database; set TEST_DB_DSN to enable.
func TestRestaurantsHandler_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("ping db: %v", err)
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE restaurant_categories, products, restaurants, categories, doctors, craftsmen, promos, admins RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	restRepo := restaurantrepo.NewPostgres(pool, logDiscard())
	prodRepo := productrepo.NewPostgres(pool, logDiscard())
	restSvc := restaurantsvc.New(restRepo, prodRepo)

	created, err := restSvc.Create(ctx, restaurantsvc.Input{
		Name:       "برجر كينج",
		Image:      "https://img.example/bk.jpg",
		Rating:     4.2,
		Categories: []string{"برجر", "وجبات سريعة"},
	})
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	if _, err := prodRepo.Create(ctx, menuItem(created.ID, "وابر", 9000)); err != nil {
		t.Fatalf("create product: %v", err)
	}

	deps := testDeps()
	deps.RestaurantSvc = restSvc
	deps.ProductSvc = productsvc.New(prodRepo)
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?category=برجر", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var listResp struct {
		Restaurants []struct {
			ID         string   `json:"id"`
			Categories []string `json:"categories"`
		} `json:"restaurants"`
	}
	decodeBody(t, rec, &listResp)
	if len(listResp.Restaurants) != 1 || listResp.Restaurants[0].ID != created.ID {
		t.Fatalf("unexpected list response: %s", rec.Body.String())
	}
	if len(listResp.Restaurants[0].Categories) != 2 {
		t.Fatalf("expected 2 category tags, got %v", listResp.Restaurants[0].Categories)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("detail: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var detailResp struct {
		Restaurant struct {
			ID string `json:"id"`
		} `json:"restaurant"`
		Products []struct {
			Name       string `json:"name"`
			PriceCents int64  `json:"priceCents"`
		} `json:"products"`
	}
	decodeBody(t, rec, &detailResp)
	if detailResp.Restaurant.ID != created.ID {
		t.Fatalf("unexpected detail restaurant: %s", rec.Body.String())
	}
	if len(detailResp.Products) != 1 || detailResp.Products[0].PriceCents != 9000 {
		t.Fatalf("unexpected detail products: %s", rec.Body.String())
	}

	// Unknown category filters everything out.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?category=مشويات", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list: expected 200, got %d", rec.Code)
	}
	var empty struct {
		Restaurants []struct{} `json:"restaurants"`
	}
	decodeBody(t, rec, &empty)
	if len(empty.Restaurants) != 0 {
		t.Fatalf("expected no restaurants, got %s", rec.Body.String())
	}
}

package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	categorysvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/category"
	craftsmansvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/craftsman"
	doctorsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/doctor"
	ordersvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/order"
	productsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/product"
	promosvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/promo"
	restaurantsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/restaurant"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/session"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newJSONRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

type stubCategorySvc struct {
	categories []domain.Category
	created    *domain.Category
	err        error
}

func (s *stubCategorySvc) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategorySvc) Create(_ context.Context, _ categorysvc.Input) (*domain.Category, error) {
	return s.created, s.err
}

func (s *stubCategorySvc) Update(_ context.Context, _ string, _ categorysvc.Input) (*domain.Category, error) {
	return s.created, s.err
}

func (s *stubCategorySvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubRestaurantSvc struct {
	restaurants []domain.Restaurant
	detail      *restaurantsvc.Detail
	err         error
}

func (s *stubRestaurantSvc) List(_ context.Context, _, _ string) ([]domain.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubRestaurantSvc) Get(_ context.Context, _ string) (*restaurantsvc.Detail, error) {
	return s.detail, s.err
}

func (s *stubRestaurantSvc) Create(_ context.Context, _ restaurantsvc.Input) (*domain.Restaurant, error) {
	return nil, s.err
}

func (s *stubRestaurantSvc) Update(_ context.Context, _ string, _ restaurantsvc.Input) (*domain.Restaurant, error) {
	return nil, s.err
}

func (s *stubRestaurantSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubProductSvc struct {
	products []domain.Product
	err      error
}

func (s *stubProductSvc) ListShelf(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) Get(_ context.Context, _ string) (*domain.Product, error) {
	return nil, s.err
}

func (s *stubProductSvc) Create(_ context.Context, _ productsvc.Input) (*domain.Product, error) {
	return nil, s.err
}

func (s *stubProductSvc) Update(_ context.Context, _ string, _ productsvc.Input) (*domain.Product, error) {
	return nil, s.err
}

func (s *stubProductSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubDoctorSvc struct{ err error }

func (s *stubDoctorSvc) List(_ context.Context, _, _ string) ([]domain.Doctor, error) {
	return nil, s.err
}

func (s *stubDoctorSvc) Create(_ context.Context, _ doctorsvc.Input) (*domain.Doctor, error) {
	return nil, s.err
}

func (s *stubDoctorSvc) Update(_ context.Context, _ string, _ doctorsvc.Input) (*domain.Doctor, error) {
	return nil, s.err
}

func (s *stubDoctorSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCraftsmanSvc struct{ err error }

func (s *stubCraftsmanSvc) List(_ context.Context, _, _ string) ([]domain.Craftsman, error) {
	return nil, s.err
}

func (s *stubCraftsmanSvc) Create(_ context.Context, _ craftsmansvc.Input) (*domain.Craftsman, error) {
	return nil, s.err
}

func (s *stubCraftsmanSvc) Update(_ context.Context, _ string, _ craftsmansvc.Input) (*domain.Craftsman, error) {
	return nil, s.err
}

func (s *stubCraftsmanSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubPromoSvc struct{ err error }

func (s *stubPromoSvc) Active(_ context.Context) ([]domain.Promo, error) {
	return nil, s.err
}

func (s *stubPromoSvc) List(_ context.Context) ([]domain.Promo, error) {
	return nil, s.err
}

func (s *stubPromoSvc) Create(_ context.Context, _ promosvc.Input) (*domain.Promo, error) {
	return nil, s.err
}

func (s *stubPromoSvc) Update(_ context.Context, _ string, _ promosvc.Input) (*domain.Promo, error) {
	return nil, s.err
}

func (s *stubPromoSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubAdminSvc struct {
	token    string
	adminID  string
	loginErr error
	verify   error
}

func (s *stubAdminSvc) Login(_ context.Context, _, _ string) (string, int, error) {
	return s.token, 3600, s.loginErr
}

func (s *stubAdminSvc) Verify(_ string) (string, error) {
	return s.adminID, s.verify
}

// testDeps builds a Deps with a live cart store, a live session manager and
// the real order service so the shopper flow can be exercised end to end;
// everything DB-backed is stubbed.
func testDeps() Deps {
	carts := cart.NewStore()
	return Deps{
		CategorySvc:   &stubCategorySvc{},
		RestaurantSvc: &stubRestaurantSvc{},
		ProductSvc:    &stubProductSvc{},
		DoctorSvc:     &stubDoctorSvc{},
		CraftsmanSvc:  &stubCraftsmanSvc{},
		PromoSvc:      &stubPromoSvc{},
		AdminSvc:      &stubAdminSvc{token: "token", adminID: "admin-1"},
		OrderSvc:      ordersvc.New(carts, "201024713976"),
		Carts:         carts,
		Sessions:      session.NewManager(time.Hour),
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var sid string
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			sid = c.Value
		}
	}
	if sid == "" {
		t.Fatal("expected a session cookie to be set")
	}
}

func TestSessionMiddleware_ReplacesUnknownCookie(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "stale-id"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var sid string
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			sid = c.Value
		}
	}
	if sid == "" || sid == "stale-id" {
		t.Fatalf("expected a fresh session cookie, got %q", sid)
	}
}

func TestStoreApplicationHandler(t *testing.T) {
	router := newTestRouter(t, testDeps())

	body := `{"storeName":"مطعم السعادة","category":"مطاعم","ownerName":"أحمد","phone":"0100"}`
	req := newJSONRequest(t, http.MethodPost, "/api/store-applications", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		WhatsappURL string `json:"whatsappUrl"`
	}
	decodeBody(t, rec, &resp)
	if !strings.HasPrefix(resp.WhatsappURL, "https://wa.me/201024713976?text=") {
		t.Fatalf("unexpected link %q", resp.WhatsappURL)
	}
}

func TestStoreApplicationHandler_MissingFields(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := newJSONRequest(t, http.MethodPost, "/api/store-applications", `{"storeName":"مطعم"}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	adminsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/admin"
)

func TestAdminLogin_Success(t *testing.T) {
	deps := testDeps()
	deps.AdminSvc = &stubAdminSvc{token: "signed-token"}
	router := newTestRouter(t, deps)

	req := newJSONRequest(t, http.MethodPost, "/admin/login", `{"email":"admin@elfahd.app","password":"secret"}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"accessToken":"signed-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	deps := testDeps()
	deps.AdminSvc = &stubAdminSvc{loginErr: adminsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	req := newJSONRequest(t, http.MethodPost, "/admin/login", `{"email":"admin@elfahd.app","password":"wrong"}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := newJSONRequest(t, http.MethodPost, "/admin/categories", `{"name":"مطاعم","link":"/restaurants"}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAdminRoutes_RejectBadToken(t *testing.T) {
	deps := testDeps()
	deps.AdminSvc = &stubAdminSvc{verify: adminsvc.ErrInvalidToken}
	router := newTestRouter(t, deps)

	req := newJSONRequest(t, http.MethodPost, "/admin/categories", `{"name":"مطاعم","link":"/restaurants"}`)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAdminCreateCategory(t *testing.T) {
	deps := testDeps()
	deps.CategorySvc = &stubCategorySvc{
		created: &domain.Category{ID: "cat-1", Name: "مطاعم", Link: "/restaurants"},
	}
	router := newTestRouter(t, deps)

	req := newJSONRequest(t, http.MethodPost, "/admin/categories", `{"name":"مطاعم","link":"/restaurants"}`)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id":"cat-1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminUpdateCategory_NotFound(t *testing.T) {
	deps := testDeps()
	deps.CategorySvc = &stubCategorySvc{err: domain.ErrNotFound}
	router := newTestRouter(t, deps)

	req := newJSONRequest(t, http.MethodPut, "/admin/categories/missing", `{"name":"مطاعم","link":"/restaurants"}`)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAdminDeleteCategory(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/cat-1", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
}

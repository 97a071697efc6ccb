package httpserver

import (
	"context"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/domain"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/handoff"
	categorysvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/category"
	craftsmansvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/craftsman"
	doctorsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/doctor"
	ordersvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/order"
	productsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/product"
	promosvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/promo"
	restaurantsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/restaurant"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/session"
)

// CategoryService lists home-screen tiles and manages them from the
// back office.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in categorysvc.Input) (*domain.Category, error)
	Update(ctx context.Context, id string, in categorysvc.Input) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type RestaurantService interface {
	List(ctx context.Context, query, category string) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*restaurantsvc.Detail, error)
	Create(ctx context.Context, in restaurantsvc.Input) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, in restaurantsvc.Input) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type ProductService interface {
	ListShelf(ctx context.Context, query string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type DoctorService interface {
	List(ctx context.Context, query, specialty string) ([]domain.Doctor, error)
	Create(ctx context.Context, in doctorsvc.Input) (*domain.Doctor, error)
	Update(ctx context.Context, id string, in doctorsvc.Input) (*domain.Doctor, error)
	Delete(ctx context.Context, id string) error
}

type CraftsmanService interface {
	List(ctx context.Context, query, profession string) ([]domain.Craftsman, error)
	Create(ctx context.Context, in craftsmansvc.Input) (*domain.Craftsman, error)
	Update(ctx context.Context, id string, in craftsmansvc.Input) (*domain.Craftsman, error)
	Delete(ctx context.Context, id string) error
}

type PromoService interface {
	Active(ctx context.Context) ([]domain.Promo, error)
	List(ctx context.Context) ([]domain.Promo, error)
	Create(ctx context.Context, in promosvc.Input) (*domain.Promo, error)
	Update(ctx context.Context, id string, in promosvc.Input) (*domain.Promo, error)
	Delete(ctx context.Context, id string) error
}

// AdminService authenticates back-office logins and verifies the bearer
// tokens it issued.
type AdminService interface {
	Login(ctx context.Context, email, password string) (string, int, error)
	Verify(token string) (string, error)
}

// OrderService builds WhatsApp hand-off links for orders and store
// applications.
type OrderService interface {
	Checkout(sessionID string, info ordersvc.CustomerInfo) (string, error)
	StoreApplication(app handoff.StoreApplication) (string, error)
}

// Deps carries everything buildRouter wires into handlers.
type Deps struct {
	CategorySvc   CategoryService
	RestaurantSvc RestaurantService
	ProductSvc    ProductService
	DoctorSvc     DoctorService
	CraftsmanSvc  CraftsmanService
	PromoSvc      PromoService
	AdminSvc      AdminService
	OrderSvc      OrderService

	Carts    *cart.Store
	Sessions *session.Manager

	UploadDir   string
	CORSOrigins string
}

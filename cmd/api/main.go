package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/config"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/db"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/httpserver"
	adminrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/admin"
	categoryrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/category"
	craftsmanrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/craftsman"
	doctorrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/doctor"
	productrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/product"
	promorepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/promo"
	restaurantrepo "github.com/alshbh-com/elfahd-express-marketplace/internal/repository/restaurant"
	adminsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/admin"
	categorysvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/category"
	craftsmansvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/craftsman"
	doctorsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/doctor"
	ordersvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/order"
	productsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/product"
	promosvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/promo"
	restaurantsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/restaurant"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/session"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	carts := cart.NewStore()
	sessions := session.NewManager(cfg.SessionTTL)
	// An expired session takes its cart with it.
	sessions.OnExpire(carts.Drop)

	sweepStop := make(chan struct{})
	go sessions.Run(cfg.SessionSweep, sweepStop)

	categoryRepo := categoryrepo.NewPostgres(dbpool)
	restaurantRepo := restaurantrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	doctorRepo := doctorrepo.NewPostgres(dbpool)
	craftsmanRepo := craftsmanrepo.NewPostgres(dbpool)
	promoRepo := promorepo.NewPostgres(dbpool)
	adminRepo := adminrepo.NewPostgres(dbpool)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc:   categorysvc.New(categoryRepo),
		RestaurantSvc: restaurantsvc.New(restaurantRepo, productRepo),
		ProductSvc:    productsvc.New(productRepo),
		DoctorSvc:     doctorsvc.New(doctorRepo),
		CraftsmanSvc:  craftsmansvc.New(craftsmanRepo),
		PromoSvc:      promosvc.New(promoRepo),
		AdminSvc:      adminsvc.New(adminRepo, cfg.JWTSecret, cfg.AdminTokenTTL),
		OrderSvc:      ordersvc.New(carts, cfg.WhatsAppNumber),
		Carts:         carts,
		Sessions:      sessions,
		UploadDir:     cfg.UploadDir,
		CORSOrigins:   cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	close(sweepStop)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

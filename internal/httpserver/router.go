package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionCookie = "elfahd_session"

// buildRouter wires the public storefront routes, the session-scoped cart
// routes and the token-guarded back office.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Carts == nil || deps.Sessions == nil {
		return nil, errors.New("cart store and session manager are required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/categories", listCategoriesHandler(deps.CategorySvc))
		api.GET("/restaurants", listRestaurantsHandler(deps.RestaurantSvc))
		api.GET("/restaurants/:id", getRestaurantHandler(deps.RestaurantSvc))
		api.GET("/products", listProductsHandler(deps.ProductSvc))
		api.GET("/doctors", listDoctorsHandler(deps.DoctorSvc))
		api.GET("/craftsmen", listCraftsmenHandler(deps.CraftsmanSvc))
		api.GET("/promos", listPromosHandler(deps.PromoSvc))

		api.POST("/store-applications", storeApplicationHandler(deps.OrderSvc))

		shopper := api.Group("", sessionMiddleware(deps.Sessions))
		{
			shopper.GET("/cart", getCartHandler(deps.Carts))
			shopper.POST("/cart/items", addCartItemHandler(deps.Carts))
			shopper.PATCH("/cart/items/:id", setCartQuantityHandler(deps.Carts))
			shopper.DELETE("/cart/items/:id", removeCartItemHandler(deps.Carts))
			shopper.DELETE("/cart", clearCartHandler(deps.Carts))
			shopper.POST("/checkout", checkoutHandler(deps.OrderSvc))
		}
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", adminLoginHandler(deps.AdminSvc))

		guarded := admin.Group("", adminAuthMiddleware(deps.AdminSvc))
		{
			guarded.POST("/uploads", uploadHandler(deps.UploadDir))

			guarded.POST("/categories", createCategoryHandler(deps.CategorySvc))
			guarded.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
			guarded.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

			guarded.POST("/restaurants", createRestaurantHandler(deps.RestaurantSvc))
			guarded.PUT("/restaurants/:id", updateRestaurantHandler(deps.RestaurantSvc))
			guarded.DELETE("/restaurants/:id", deleteRestaurantHandler(deps.RestaurantSvc))

			guarded.POST("/products", createProductHandler(deps.ProductSvc))
			guarded.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
			guarded.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

			guarded.POST("/doctors", createDoctorHandler(deps.DoctorSvc))
			guarded.PUT("/doctors/:id", updateDoctorHandler(deps.DoctorSvc))
			guarded.DELETE("/doctors/:id", deleteDoctorHandler(deps.DoctorSvc))

			guarded.POST("/craftsmen", createCraftsmanHandler(deps.CraftsmanSvc))
			guarded.PUT("/craftsmen/:id", updateCraftsmanHandler(deps.CraftsmanSvc))
			guarded.DELETE("/craftsmen/:id", deleteCraftsmanHandler(deps.CraftsmanSvc))

			guarded.GET("/promos", listAllPromosHandler(deps.PromoSvc))
			guarded.POST("/promos", createPromoHandler(deps.PromoSvc))
			guarded.PUT("/promos/:id", updatePromoHandler(deps.PromoSvc))
			guarded.DELETE("/promos/:id", deletePromoHandler(deps.PromoSvc))
		}
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}

	return router, nil
}

func corsConfig(origins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true

	origins = strings.TrimSpace(origins)
	if origins == "" || origins == "*" {
		// Credentialed requests cannot use the wildcard origin, so echo
		// the caller's origin instead.
		cfg.AllowOriginFunc = func(string) bool { return true }
		return cfg
	}
	cfg.AllowOrigins = strings.Split(origins, ",")
	return cfg
}

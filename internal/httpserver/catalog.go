package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The storefront listing endpoints all take the same filter shape: ?q= is
// a case-insensitive substring match on the name, plus one
// vertical-specific equality filter.

func listCategoriesHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": items})
	}
}

func listRestaurantsHandler(svc RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.Query("q"), c.Query("category"))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": items})
	}
}

func getRestaurantHandler(svc RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func listProductsHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListShelf(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": items})
	}
}

func listDoctorsHandler(svc DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.Query("q"), c.Query("specialty"))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"doctors": items})
	}
}

func listCraftsmenHandler(svc CraftsmanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.Query("q"), c.Query("profession"))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"craftsmen": items})
	}
}

func listPromosHandler(svc PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Active(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promos": items})
	}
}

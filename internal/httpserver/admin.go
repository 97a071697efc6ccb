package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/admin"
	categorysvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/category"
	craftsmansvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/craftsman"
	doctorsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/doctor"
	productsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/product"
	promosvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/promo"
	restaurantsvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/restaurant"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func adminLoginHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "email and password are required")
			return
		}

		token, ttl, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, adminsvc.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "invalid credentials")
				return
			}
			respondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken": token,
			"tokenType":   "Bearer",
			"expiresIn":   ttl,
		})
	}
}

// adminAuthMiddleware guards the back office with the bearer token issued
// by /admin/login.
func adminAuthMiddleware(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		adminID, err := svc.Verify(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}

func createCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createRestaurantHandler(svc RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in restaurantsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateRestaurantHandler(svc RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in restaurantsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteRestaurantHandler(svc RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createDoctorHandler(svc DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in doctorsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateDoctorHandler(svc DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in doctorsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteDoctorHandler(svc DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createCraftsmanHandler(svc CraftsmanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in craftsmansvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateCraftsmanHandler(svc CraftsmanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in craftsmansvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCraftsmanHandler(svc CraftsmanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listAllPromosHandler(svc PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promos": items})
	}
}

func createPromoHandler(svc PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promosvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updatePromoHandler(svc PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promosvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deletePromoHandler(svc PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

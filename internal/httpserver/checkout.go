package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/handoff"
	ordersvc "github.com/alshbh-com/elfahd-express-marketplace/internal/service/order"
)

// checkoutHandler turns the session cart into a WhatsApp hand-off link.
// The cart is cleared once the link is built; there is no payment step.
func checkoutHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info ordersvc.CustomerInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}

		link, err := svc.Checkout(sessionID(c), info)
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrMissingFields):
				respondError(c, http.StatusBadRequest, err.Error())
			case errors.Is(err, ordersvc.ErrEmptyCart):
				respondError(c, http.StatusConflict, err.Error())
			default:
				respondDomainError(c, err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"whatsappUrl": link})
	}
}

func storeApplicationHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var app handoff.StoreApplication
		if err := c.ShouldBindJSON(&app); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}

		link, err := svc.StoreApplication(app)
		if err != nil {
			if errors.Is(err, ordersvc.ErrMissingFields) {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			respondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"whatsappUrl": link})
	}
}

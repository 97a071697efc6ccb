package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
)

type cartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalCents int64       `json:"totalCents"`
	ItemCount  int         `json:"itemCount"`
}

func cartView(carts *cart.Store, sid string) cartResponse {
	items := carts.Lines(sid)
	if items == nil {
		items = []cart.Line{}
	}
	return cartResponse{
		Items:      items,
		TotalCents: carts.TotalCents(sid),
		ItemCount:  carts.ItemCount(sid),
	}
}

func getCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(carts, sessionID(c)))
	}
}

type addItemRequest struct {
	ID             string `json:"id" binding:"required"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"priceCents"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

func addCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}

		sid := sessionID(c)
		carts.AddLine(sid, cart.Line{
			ID:             req.ID,
			Name:           req.Name,
			PriceCents:     req.PriceCents,
			Quantity:       req.Quantity,
			Image:          req.Image,
			RestaurantID:   req.RestaurantID,
			RestaurantName: req.RestaurantName,
		})
		c.JSON(http.StatusOK, cartView(carts, sid))
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func setCartQuantityHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
			return
		}

		sid := sessionID(c)
		carts.SetQuantity(sid, c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, cartView(carts, sid))
	}
}

func removeCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		carts.RemoveLine(sid, c.Param("id"))
		c.JSON(http.StatusOK, cartView(carts, sid))
	}
}

func clearCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		carts.Clear(sid)
		c.JSON(http.StatusOK, cartView(carts, sid))
	}
}

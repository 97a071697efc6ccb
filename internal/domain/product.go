package domain

import "time"

// Product is a purchasable item. RestaurantID is nil for standalone shelf
// items (pharmacy and supermarket verticals).
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Description  string    `json:"description,omitempty"`
	PriceCents   int64     `json:"priceCents"`
	RestaurantID *string   `json:"restaurantId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

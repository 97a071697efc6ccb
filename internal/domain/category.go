package domain

import "time"

// Category is a top-level storefront section shown on the home grid
// (restaurants, pharmacies, supermarkets, ...).
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

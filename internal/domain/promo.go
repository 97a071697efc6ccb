package domain

import "time"

// Promo is a banner shown on the home slider while Active.
type Promo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

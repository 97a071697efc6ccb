package domain

import "time"

type Doctor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Education  string    `json:"education,omitempty"`
	Image      string    `json:"image"`
	PriceCents int64     `json:"priceCents"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	CreatedAt  time.Time `json:"createdAt"`
}

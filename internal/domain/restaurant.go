package domain

import "time"

type Restaurant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Description   string    `json:"description,omitempty"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	DeliveryTime  string    `json:"deliveryTime,omitempty"`
	MinOrderCents int64     `json:"minOrderCents"`
	Categories    []string  `json:"categories,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

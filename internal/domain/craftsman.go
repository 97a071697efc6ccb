package domain

import "time"

// Craftsman is a bookable handyman (plumber, electrician, ...).
type Craftsman struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Profession      string    `json:"profession"`
	Description     string    `json:"description,omitempty"`
	Image           string    `json:"image"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	Phone           string    `json:"phone,omitempty"`
	Area            string    `json:"area,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

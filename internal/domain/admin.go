package domain

import "time"

// Admin is a back-office account. PasswordHash is bcrypt and never
// serialized.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

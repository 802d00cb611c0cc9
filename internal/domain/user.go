package domain

import (
	"time"

	"github.com/google/uuid"
)

// User roles recognized by the marketplace.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User represents a registered marketplace account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsBuyer reports whether the user may own a cart and place orders.
func (u *User) IsBuyer() bool {
	return u != nil && u.Role == RoleBuyer
}

// RefreshToken is a long-lived credential used to mint new access tokens.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `json:"revoked"`
}

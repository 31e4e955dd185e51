package entity

import "time"

// GuestIdentity is the cart owner used when no session identity is available.
// Guest cart lines live in process memory only and vanish on restart.
const GuestIdentity = "guest"

type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is a cart item joined with its resolved product, as returned to
// the storefront.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

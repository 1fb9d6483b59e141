package domain

import "time"

// CartLine is one pending selection in a user's session cart. The same
// product may appear on several lines; consolidation happens at build time.
type CartLine struct {
	ProductID   int64     `json:"product_id"`
	Name        string    `json:"name"`
	LegalEntity int       `json:"legal_entity"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

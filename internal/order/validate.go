package order

import (
	"fmt"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
)

// Validate checks the order against the invariants the store relies on:
// an assigned id, a known user, and at least one position with a positive
// count.
func Validate(o *domain.Order) error {
	if o.ID == "" {
		return fmt.Errorf("order has no id")
	}
	if o.UserID == "" {
		return fmt.Errorf("order has no user id")
	}
	if len(o.Positions) == 0 {
		return fmt.Errorf("order has no positions")
	}
	for _, p := range o.Positions {
		if p.Count <= 0 {
			return fmt.Errorf("position %d has non-positive count %d", p.BeerID, p.Count)
		}
	}
	return nil
}

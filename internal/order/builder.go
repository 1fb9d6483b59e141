package order

import (
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"github.com/google/uuid"
)

// Build consolidates the session cart into a canonical order. Lines sharing
// a product id collapse into one position: quantities accumulate, the
// last-seen name and legal entity win. Positions keep the order in which
// each distinct product first appeared. The order id is a fresh UUID, not
// derived from wall-clock time.
func Build(lines []domain.CartLine, userID, organization, organizationID string) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	index := make(map[int64]int, len(lines))
	positions := make([]domain.OrderPosition, 0, len(lines))

	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			positions[i].Count += line.Quantity
			positions[i].BeerName = line.Name
			positions[i].LegalEntity = line.LegalEntity
			continue
		}

		index[line.ProductID] = len(positions)
		positions = append(positions, domain.OrderPosition{
			BeerID:      line.ProductID,
			BeerName:    line.Name,
			LegalEntity: line.LegalEntity,
			Count:       line.Quantity,
		})
	}

	return &domain.Order{
		ID:             uuid.NewString(),
		Status:         domain.OrderStatusNew,
		UserID:         userID,
		Organization:   organization,
		OrganizationID: organizationID,
		Process:        domain.ProcessIntake,
		Positions:      positions,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

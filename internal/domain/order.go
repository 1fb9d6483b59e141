package domain

import "time"

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDone       OrderStatus = "DONE"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDone
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// ProcessIntake labels the intake stage every freshly submitted order
// starts in.
const ProcessIntake = "beer-intake"

// OrderPosition is one consolidated product line within a submitted order.
type OrderPosition struct {
	BeerID      int64  `bson:"beer_id" json:"beer_id"`
	BeerName    string `bson:"beer_name" json:"beer_name"`
	LegalEntity int    `bson:"legal_entity" json:"legal_entity"`
	Count       int    `bson:"count" json:"count"`
}

// Order is the canonical order document. It is immutable after insert
// except for Status, which only the external fulfillment process changes.
type Order struct {
	ID             string          `bson:"_id" json:"id"`
	Status         OrderStatus     `bson:"status" json:"status"`
	UserID         string          `bson:"user_id" json:"user_id"`
	Organization   string          `bson:"organization" json:"organization"`
	OrganizationID string          `bson:"organization_id" json:"organization_id"`
	Process        string          `bson:"process" json:"process"`
	Positions      []OrderPosition `bson:"positions" json:"positions"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
}

// TotalQuantity sums the counts of all positions.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, p := range o.Positions {
		total += p.Count
	}
	return total
}

// OrderSummary is the display-ready projection used by the order history view.
type OrderSummary struct {
	ID            string      `json:"id"`
	Date          time.Time   `json:"date"`
	Status        OrderStatus `json:"status"`
	ItemsCount    int         `json:"items_count"`
	TotalQuantity int         `json:"total_quantity"`
}

// Summarize projects an order into its history-view summary.
func (o *Order) Summarize() OrderSummary {
	return OrderSummary{
		ID:            o.ID,
		Date:          o.CreatedAt,
		Status:        o.Status,
		ItemsCount:    len(o.Positions),
		TotalQuantity: o.TotalQuantity(),
	}
}

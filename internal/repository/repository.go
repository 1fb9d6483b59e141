package repository

import (
	"context"
	"errors"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
)

// OrderRepository defines the interface for the order persistence boundary.
// Consumers define this interface, not the MongoDB implementation.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	RecentByOrganization(ctx context.Context, organizationID string, limit int64) ([]domain.Order, error)
	CreateIndexes(ctx context.Context) error
}

// ErrDuplicateOrder means a document with the same order id is already
// persisted. A retried submission hitting this error can treat the order as
// recorded.
var ErrDuplicateOrder = errors.New("order with this id already exists")

package cart

import (
	"context"
	"errors"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
)

// Store holds one user's pending cart lines for the duration of an ordering
// session. Consumers define this interface, not the Redis implementation.
type Store interface {
	Add(ctx context.Context, chatID string, line domain.CartLine) error
	List(ctx context.Context, chatID string) ([]domain.CartLine, error)
	Remove(ctx context.Context, chatID string, productID int64) error
	Clear(ctx context.Context, chatID string) error
}

var ErrItemNotFound = errors.New("item not found in cart")

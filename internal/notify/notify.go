package notify

import (
	"context"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
)

// Notifier tells the user their order went through. Notification failures
// never fail the order itself.
type Notifier interface {
	OrderCreated(ctx context.Context, chatID string, order *domain.Order) error
}

// Noop is used when no bot token is configured.
type Noop struct{}

func (Noop) OrderCreated(context.Context, string, *domain.Order) error {
	return nil
}

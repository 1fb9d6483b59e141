package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot}, nil
}

// TelegramNotifier sends an order confirmation to the user's chat through
// the same bot that handles registration.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

func (t *TelegramNotifier) OrderCreated(_ context.Context, chatID string, order *domain.Order) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	text := fmt.Sprintf("Order %s accepted: %d positions, %d items total.",
		order.ID, len(order.Positions), order.TotalQuantity())

	msg := tgbotapi.NewMessage(id, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send order notification: %w", err)
	}

	return nil
}

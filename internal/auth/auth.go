package auth

import (
	"context"
	"errors"
)

// Checker resolves a Telegram chat id to a registered user profile.
// Consumers define this interface, not the Redis implementation.
type Checker interface {
	Profile(ctx context.Context, chatID string) (*Profile, error)
}

// ErrNotRegistered means the chat id has no completed registration; the
// session is over and the user must go through the external bot flow.
var ErrNotRegistered = errors.New("user is not registered")

// Profile is the registration record kept by the bot's onboarding flow.
type Profile struct {
	ChatID         string
	Name           string
	Phone          string
	Organization   string
	OrganizationID string
}

package auth

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Registration hash fields written by the bot's onboarding flow.
const (
	fieldChatID       = "UserChatID"
	fieldStep         = "current_step"
	fieldName         = "name"
	fieldPhone        = "phone"
	fieldOrganization = "organization"
	fieldOrgID        = "organization_id"

	stepComplete = "complete"
)

func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

type RedisChecker struct {
	client *redis.Client
}

// Profile reads the registration hash for the chat id. A user counts as
// registered only when the hash exists, echoes the same chat id back and
// the onboarding flow reached its final step.
func (r *RedisChecker) Profile(ctx context.Context, chatID string) (*Profile, error) {
	data, err := r.client.HGetAll(ctx, userKey(chatID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(data) == 0 || data[fieldChatID] != chatID || data[fieldStep] != stepComplete {
		return nil, ErrNotRegistered
	}

	return &Profile{
		ChatID:         chatID,
		Name:           data[fieldName],
		Phone:          data[fieldPhone],
		Organization:   data[fieldOrganization],
		OrganizationID: data[fieldOrgID],
	}, nil
}

func userKey(chatID string) string {
	return fmt.Sprintf("beer:user:%s", chatID)
}

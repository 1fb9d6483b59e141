package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisChecker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisChecker(client), mr
}

func registerUser(mr *miniredis.Miniredis, chatID string) {
	mr.HSet(userKey(chatID),
		fieldChatID, chatID,
		fieldStep, stepComplete,
		fieldName, "Ivan",
		fieldPhone, "+79990001122",
		fieldOrganization, "Beer World LLC",
		fieldOrgID, "16d7a1a8-a651-11ef-895a-005056c00008",
	)
}

func TestProfile_Registered(t *testing.T) {
	checker, mr := setupTestRedis(t)
	registerUser(mr, "7944903241")

	p, err := checker.Profile(context.Background(), "7944903241")
	require.NoError(t, err)

	assert.Equal(t, "7944903241", p.ChatID)
	assert.Equal(t, "Beer World LLC", p.Organization)
	assert.Equal(t, "16d7a1a8-a651-11ef-895a-005056c00008", p.OrganizationID)
	assert.Equal(t, "Ivan", p.Name)
}

func TestProfile_UnknownChatID(t *testing.T) {
	checker, _ := setupTestRedis(t)

	p, err := checker.Profile(context.Background(), "777")

	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Nil(t, p)
}

func TestProfile_IncompleteRegistration(t *testing.T) {
	checker, mr := setupTestRedis(t)
	mr.HSet(userKey("555"), fieldChatID, "555", fieldStep, "phone")

	_, err := checker.Profile(context.Background(), "555")

	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestProfile_ChatIDMismatch(t *testing.T) {
	checker, mr := setupTestRedis(t)
	mr.HSet(userKey("555"), fieldChatID, "556", fieldStep, stepComplete)

	_, err := checker.Profile(context.Background(), "555")

	assert.ErrorIs(t, err, ErrNotRegistered)
}

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:     client,
		sessionTTL: 24 * time.Hour,
	}
}

// RedisStore keeps the cart as a JSON list under one key per chat id. The
// session TTL is refreshed on every write, so an abandoned cart eventually
// expires on its own.
type RedisStore struct {
	client     *redis.Client
	sessionTTL time.Duration
}

// Add merges the line into an existing one for the same product, otherwise
// appends it. The order builder consolidates again at build time, so order
// correctness does not depend on this merge.
func (r *RedisStore) Add(ctx context.Context, chatID string, line domain.CartLine) error {
	lines, err := r.List(ctx, chatID)
	if err != nil {
		return err
	}

	if line.AddedAt.IsZero() {
		line.AddedAt = time.Now().UTC()
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			lines[i].Name = line.Name
			lines[i].LegalEntity = line.LegalEntity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}

	return r.save(ctx, chatID, lines)
}

// List returns the cart lines in insertion order. A missing key is an empty
// cart, not an error.
func (r *RedisStore) List(ctx context.Context, chatID string) ([]domain.CartLine, error) {
	data, err := r.client.Get(ctx, cartKey(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return lines, nil
}

func (r *RedisStore) Remove(ctx context.Context, chatID string, productID int64) error {
	lines, err := r.List(ctx, chatID)
	if err != nil {
		return err
	}

	for i, line := range lines {
		if line.ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			return r.save(ctx, chatID, lines)
		}
	}

	return ErrItemNotFound
}

func (r *RedisStore) Clear(ctx context.Context, chatID string) error {
	if err := r.client.Del(ctx, cartKey(chatID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func (r *RedisStore) save(ctx context.Context, chatID string, lines []domain.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(chatID), data, r.sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func cartKey(chatID string) string {
	return fmt.Sprintf("cart:%s", chatID)
}

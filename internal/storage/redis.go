package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ DedupStore = (*RedisDedupStore)(nil)

const webhookKeyPrefix = "webhook:"

// DefaultDedupTTL covers Shopify's redelivery window with margin.
const DefaultDedupTTL = 48 * time.Hour

type RedisConfig struct {
	Client *redis.Client
}

type RedisDedupStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDedupStore(cfg RedisConfig, ttl time.Duration) *RedisDedupStore {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &RedisDedupStore{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func (r *RedisDedupStore) Seen(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, webhookKeyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check webhook seen: %w", err)
	}
	return n > 0, nil
}

func (r *RedisDedupStore) MarkSeen(ctx context.Context, id string) error {
	if err := r.client.Set(ctx, webhookKeyPrefix+id, 1, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark webhook seen: %w", err)
	}
	return nil
}

func (r *RedisDedupStore) Close() error {
	return r.client.Close()
}

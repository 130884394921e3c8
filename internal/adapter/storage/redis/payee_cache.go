package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"upi-guard/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const payeeCacheTTL = 10 * time.Minute

// PayeeCache implements ports.PayeeCache using Redis. Payee records change
// rarely, so the hot lookup by routing address is served from cache with a
// short TTL and the database stays the source of truth.
type PayeeCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewPayeeCache creates a new Redis-backed payee cache.
func NewPayeeCache(client *goredis.Client) *PayeeCache {
	return &PayeeCache{
		client: client,
		prefix: "payee:",
		ttl:    payeeCacheTTL,
	}
}

// Get retrieves a cached payee by UPI routing address.
// Returns nil, nil on a cache miss.
func (c *PayeeCache) Get(ctx context.Context, upiID string) (*domain.Payee, error) {
	val, err := c.client.Get(ctx, c.prefix+upiID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis payee get: %w", err)
	}

	payee := &domain.Payee{}
	if err := json.Unmarshal(val, payee); err != nil {
		// Surface the decode failure; the caller logs it and falls
		// through to the database.
		return nil, fmt.Errorf("redis payee decode: %w", err)
	}
	return payee, nil
}

// Set stores a payee in the cache keyed by its UPI routing address.
func (c *PayeeCache) Set(ctx context.Context, payee *domain.Payee) error {
	data, err := json.Marshal(payee)
	if err != nil {
		return fmt.Errorf("redis payee encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+payee.UPIID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis payee set: %w", err)
	}
	return nil
}

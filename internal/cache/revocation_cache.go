package cache

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// RevocationCache keeps the identifiers of logged-out tokens in Redis. Each
// entry carries the remaining lifetime of its token as TTL, so the set never
// outgrows the population of still-unexpired revoked tokens.
type RevocationCache struct {
	client *redisv9.Client
}

func NewRevocationCache(client *redisv9.Client) *RevocationCache {
	return &RevocationCache{client: client}
}

func (c *RevocationCache) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing left to revoke.
		return nil
	}
	key := c.revokedKey(tokenID)
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set revocation failed: %w", err)
	}
	return nil
}

func (c *RevocationCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := c.revokedKey(tokenID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis check revocation failed: %w", err)
	}
	return exists > 0, nil
}

func (c *RevocationCache) revokedKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

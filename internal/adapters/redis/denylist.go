// Package redis provides Redis-based adapters for the taskhive system.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked session token IDs until their natural
// expiry. Keys expire with the token, so the denylist never grows beyond
// the set of live-but-revoked sessions.
type TokenDenylist struct {
	client redis.UniversalClient
	prefix string
}

// NewTokenDenylist creates a Redis-backed token denylist.
func NewTokenDenylist(client redis.UniversalClient) *TokenDenylist {
	return &TokenDenylist{
		client: client,
		prefix: "revoked:",
	}
}

// NewTokenDenylistWithPrefix creates a denylist with a custom key prefix.
func NewTokenDenylistWithPrefix(client redis.UniversalClient, prefix string) *TokenDenylist {
	return &TokenDenylist{
		client: client,
		prefix: prefix,
	}
}

// Revoke marks a token ID as revoked until the given time. Revoking an
// already-expired token is a no-op.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return errors.New("token ID cannot be empty")
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		// Token already expired; signature checks will reject it anyway.
		return nil
	}

	key := d.prefix + tokenID
	if err := d.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	key := d.prefix + tokenID
	_, err := d.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	return true, nil
}

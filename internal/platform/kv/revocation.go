package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers logged-out token ids until the token would have
// expired anyway.
type RevocationStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRevocationStore(rdb *redis.Client, prefix string) *RevocationStore {
	return &RevocationStore{rdb: rdb, prefix: prefix}
}

// Revoke marks jti as revoked. A token that is already expired needs no entry.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if expiresAt.IsZero() {
		ttl = 24 * time.Hour
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, s.prefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("RevocationStore.Revoke: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.rdb.Get(ctx, s.prefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("RevocationStore.IsRevoked: %w", err)
	}
	return true, nil
}

package checkout

import (
	"context"
	"fmt"

	"stayx/utils"

	"github.com/go-redis/redis/v8"
)

// DedupeStore guards the confirmation side effect. Reserve returns false
// when the key is already held, meaning the intent was confirmed before.
type DedupeStore interface {
	Reserve(ctx context.Context, intentID string) (bool, error)
	Release(ctx context.Context, intentID string) error
}

// RedisDedupeStore implements DedupeStore with SETNX on the cache DB.
type RedisDedupeStore struct {
	Client *redis.Client
}

func (s *RedisDedupeStore) key(intentID string) string {
	return utils.DedupePrefix + intentID
}

func (s *RedisDedupeStore) Reserve(ctx context.Context, intentID string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, s.key(intentID), 1, utils.DedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe reserve failed: %w", err)
	}
	return ok, nil
}

func (s *RedisDedupeStore) Release(ctx context.Context, intentID string) error {
	return s.Client.Del(ctx, s.key(intentID)).Err()
}

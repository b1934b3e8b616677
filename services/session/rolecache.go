package session

import (
	"context"
	"fmt"

	"stayx/models"
	"stayx/utils"

	"github.com/go-redis/redis/v8"
)

// RedisRoleCache implements RoleCache on the dedicated role-cache Redis DB.
type RedisRoleCache struct {
	Client *redis.Client
}

func (c *RedisRoleCache) key(uid string) string {
	return utils.RoleCachePrefix + uid
}

func (c *RedisRoleCache) Get(ctx context.Context, uid string) (models.Role, bool, error) {
	val, err := c.Client.Get(ctx, c.key(uid)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	role := models.Role(val)
	if !role.Valid() {
		// Stale or corrupted entry; treat as a miss.
		return "", false, nil
	}
	return role, true, nil
}

func (c *RedisRoleCache) Set(ctx context.Context, uid string, role models.Role) error {
	return c.Client.Set(ctx, c.key(uid), string(role), utils.RoleCacheTTL).Err()
}

func (c *RedisRoleCache) Invalidate(ctx context.Context, uid string) error {
	return c.Client.Del(ctx, c.key(uid)).Err()
}

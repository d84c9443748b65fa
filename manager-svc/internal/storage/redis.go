package storage

import (
	"context"
	"encoding/json"
	"errors"

	"foodcart/manager-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const coordsKeyPrefix = "coords:"

type RedisCoordinateCache struct {
	Client *redis.Client
}

func NewRedisCoordinateCache(client *redis.Client) *RedisCoordinateCache {
	return &RedisCoordinateCache{Client: client}
}

func (c *RedisCoordinateCache) Key(address string) string {
	return coordsKeyPrefix + address
}

func (c *RedisCoordinateCache) Get(ctx context.Context, key string) (domain.Coordinates, bool, error) {
	raw, err := c.Client.Get(ctx, c.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, err
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return domain.Coordinates{}, false, err
	}
	return coords, true, nil
}

// Put stores the entry without expiration.
func (c *RedisCoordinateCache) Put(ctx context.Context, key string, coords domain.Coordinates) error {
	raw, err := json.Marshal(coords)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key(key), raw, 0).Err()
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/port"
	"github.com/redis/go-redis/v9"
	"time"
)

type redisCache struct {
	client    *redis.Client
	namespace string
}

// NewRedis returns a cache whose keys are prefixed with namespace.
func NewRedis(client *redis.Client, namespace string) port.Cache {
	return &redisCache{
		client:    client,
		namespace: namespace,
	}
}

func (r *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (r *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("client.Get: %w", err)
	}

	return value, true, nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

func (r *redisCache) key(key string) string {
	return fmt.Sprintf("%s:%s", r.namespace, key)
}

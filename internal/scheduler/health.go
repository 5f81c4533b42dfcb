package scheduler

import (
	"context"
	"fmt"

	"storefront/platform/config"

	"github.com/redis/go-redis/v9"
)

// RedisHealth pings the Redis instance that backs the queue.
type RedisHealth struct {
	client *redis.Client
}

func NewRedisHealth(cfg config.SchedulerConfig) (*RedisHealth, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opt.TLSConfig = tlsConfigFor(opt, cfg.GetRedisTLSInsecure())

	return &RedisHealth{client: redis.NewClient(opt)}, nil
}

func (h *RedisHealth) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

func (h *RedisHealth) Close() error {
	return h.client.Close()
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/i-shreyansh/portfolio/internal/application/service"
	"github.com/i-shreyansh/portfolio/internal/config"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisPageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPageCache(rdb *redis.Client, ttl time.Duration) service.PageCache {
	return &redisPageCache{rdb: rdb, ttl: ttl}
}

func (c *redisPageCache) Get(ctx context.Context, key string) ([]byte, error) {
	page, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return page, nil
}

func (c *redisPageCache) Set(ctx context.Context, key string, page []byte) error {
	if err := c.rdb.Set(ctx, key, page, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

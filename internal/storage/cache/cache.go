package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/RudraNarayan94/MOK/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a read-through memoizer over redis. Values are stored as
// JSON; a miss and a broken entry look the same to the caller.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(cfg config.RedisConfig, log *zap.Logger) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	return &Cache{rdb: rdb, log: log}, nil
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache entry marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

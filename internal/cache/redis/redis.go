package redis

import (
	"context"
	"errors"
	"time"

	"github.com/almousleck/glasslink/internal/cache"
	"github.com/almousleck/glasslink/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cli.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cache.ErrNotFound
		}
		return "", err
	}

	return val, nil
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cache.ErrNotFound
		}
		return err
	}

	return json.Unmarshal(val, dest)
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) error {
	if err := c.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Error(
			"failed to set cache key",
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// SetNX sets the key only if it does not already exist. Returns false when
// a live value is present.
func (c *Cache) SetNX(ctx context.Context, t time.Duration, key string, val any) (bool, error) {
	ok, err := c.cli.SetNX(ctx, key, val, t).Result()
	if err != nil {
		zap.L().Error(
			"failed to setnx cache key",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, err
	}

	return ok, nil
}

func (c *Cache) Exists(ctx context.Context, key string) bool {
	n, err := c.cli.Exists(ctx, key).Result()
	if err != nil {
		zap.L().Error(
			"failed to check cache key",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	return n > 0
}

// TTL reports the remaining lifetime of the key, or <= 0 when the key does
// not exist.
func (c *Cache) TTL(ctx context.Context, key string) time.Duration {
	d, err := c.cli.TTL(ctx, key).Result()
	if err != nil {
		zap.L().Error(
			"failed to get ttl",
			zap.String("key", key),
			zap.Error(err),
		)
		return 0
	}

	return d
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if err := c.cli.Del(ctx, keys...).Err(); err != nil {
		zap.L().Error(
			"failed to delete cache keys",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	iter := c.cli.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.cli.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Error(
				"failed to delete cache key",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
		}
	}

	if err := iter.Err(); err != nil {
		zap.L().Error(
			"failed to scan keys",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
}

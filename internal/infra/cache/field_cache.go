package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// All listings live in one hash so a single DEL drops every sport at once.
const fieldListKey = "field-booking:fields:active"

// Bumped by every Invalidate. Writers WATCH it so a listing loaded before an
// invalidation is never stored after it.
const fieldGenKey = "field-booking:fields:generation"

const allSportsMember = "_all"

var errStaleGeneration = errors.New("field cache generation moved")

type RedisFieldCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisClient returns nil when Addr is empty. A configured but
// unreachable server is an error so misconfiguration surfaces at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewFieldCache falls back to a no-op cache when rdb is nil.
func NewFieldCache(rdb *redis.Client, cfg config.RedisConfig) shared.FieldCache {
	if rdb == nil {
		return NoopFieldCache{}
	}
	ttl := cfg.FieldCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisFieldCache{rdb: rdb, ttl: ttl}
}

func (c *RedisFieldCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	bs, err := c.rdb.HGet(ctx, fieldListKey, member(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis hget: %w", err)
	}
	if err := json.Unmarshal(bs, dest); err != nil {
		return false, fmt.Errorf("decode cached fields: %w", err)
	}
	return true, nil
}

func (c *RedisFieldCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, fieldGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

// Set stores value only while the generation still equals generation. A lost
// race is not an error; the next reader refills the entry.
func (c *RedisFieldCache) Set(ctx context.Context, key string, generation int64, value any) error {
	bs, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fieldGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, fieldListKey, member(key), bs)
			pipe.Expire(ctx, fieldListKey, c.ttl)
			return nil
		})
		return err
	}, fieldGenKey)
	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (c *RedisFieldCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, fieldGenKey)
		pipe.Del(ctx, fieldListKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

func member(key string) string {
	if key == "" {
		return allSportsMember
	}
	return key
}

type NoopFieldCache struct{}

func (NoopFieldCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopFieldCache) Generation(context.Context) (int64, error)      { return 0, nil }
func (NoopFieldCache) Set(context.Context, string, int64, any) error  { return nil }
func (NoopFieldCache) Invalidate(context.Context) error               { return nil }

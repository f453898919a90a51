// Package cache provides a Redis read-through cache in front of the catalog repository.
package cache

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "catalog"
	scanBatch = 100
)

// CatalogCache decorates a repository.CatalogRepository. Cache failures are logged and
// fall through to the wrapped repository; empty results are never cached so a freshly
// seeded catalog is visible immediately.
type CatalogCache struct {
	next   repository.CatalogRepository
	client redis.Cmdable
	ttl    time.Duration
}

// NewCatalogCache wraps next with a cache stored in client.
func NewCatalogCache(next repository.CatalogRepository, client redis.Cmdable, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{next: next, client: client, ttl: ttl}
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (c *CatalogCache) QueryExercisesByLevel(ctx context.Context, level domain.Level) ([]domain.Exercise, error) {
	return readThrough(ctx, c, Key("exercises", "level", string(level)), func(ctx context.Context) ([]domain.Exercise, error) {
		return c.next.QueryExercisesByLevel(ctx, level)
	})
}

func (c *CatalogCache) QueryRecipesByDiet(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	return readThrough(ctx, c, Key("recipes", "diet", string(diet)), func(ctx context.Context) ([]domain.Recipe, error) {
		return c.next.QueryRecipesByDiet(ctx, diet)
	})
}

func (c *CatalogCache) AnyExercises(ctx context.Context, limit int64) ([]domain.Exercise, error) {
	return readThrough(ctx, c, Key("exercises", "any", fmt.Sprint(limit)), func(ctx context.Context) ([]domain.Exercise, error) {
		return c.next.AnyExercises(ctx, limit)
	})
}

func (c *CatalogCache) AnyRecipes(ctx context.Context, limit int64) ([]domain.Recipe, error) {
	return readThrough(ctx, c, Key("recipes", "any", fmt.Sprint(limit)), func(ctx context.Context) ([]domain.Recipe, error) {
		return c.next.AnyRecipes(ctx, limit)
	})
}

// Invalidate drops every cached query for kind ("exercises" or "recipes").
// Keys are walked with SCAN so a large keyspace does not block the server.
func (c *CatalogCache) Invalidate(ctx context.Context, kind string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", keyPrefix, kind), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		if err := c.client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Key builds "catalog:<kind>:<filter>:<value>".
func Key(kind, filter, value string) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, kind, filter, value)
}

func readThrough[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []T
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		logger.Warn("discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		logger.Warn("catalog cache read failed", "key", key, "error", err)
	}

	items, err := load(ctx)
	if err != nil || len(items) == 0 {
		return items, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		logger.Warn("catalog cache encode failed", "key", key, "error", err)
		return items, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
	return items, nil
}

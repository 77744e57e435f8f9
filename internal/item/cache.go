package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedRepository serves GetByID from Redis and falls through to the wrapped
// Repository on a miss. Writes to an item drop its cache entry.
type CachedRepository struct {
	Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRepository wraps repo with a Redis read-through cache.
func NewCachedRepository(repo Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		client:     client,
		ttl:        ttl,
	}
}

// NewRedisClient creates a new Redis client for the item cache.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func cacheKey(id int64) string {
	return fmt.Sprintf("item:%d", id)
}

func (r *CachedRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	logger := zerolog.Ctx(ctx)

	val, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var it Item
		if err := json.Unmarshal(val, &it); err == nil {
			return &it, nil
		}
		logger.Warn().Int64("item_id", id).Msg("dropping undecodable item cache entry")
	case !errors.Is(err, redis.Nil):
		// Cache errors fall through to the database.
		logger.Warn().Err(err).Int64("item_id", id).Msg("item cache read failed")
	}

	it, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(it); err == nil {
		if err := r.client.Set(ctx, cacheKey(id), data, r.ttl).Err(); err != nil {
			logger.Warn().Err(err).Int64("item_id", id).Msg("item cache write failed")
		}
	}
	return it, nil
}

// Update drops the cache entry before and after the write. Redis errors are logged only.
func (r *CachedRepository) Update(ctx context.Context, it *Item) error {
	r.invalidate(ctx, it.ID)
	if err := r.Repository.Update(ctx, it); err != nil {
		return err
	}
	r.invalidate(ctx, it.ID)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("item_id", id).Msg("item cache invalidation failed")
	}
}

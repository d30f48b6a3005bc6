package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	homeDashboardKeyPrefix = "home:dashboard:"
	routineListKeyPrefix   = "routines:user:"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCacheRepository is a thin JSON cache over Redis with OTel tracing.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// Get retrieves a value from cache by key with OTel tracing
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return ErrCacheMiss
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Set stores a value in cache with TTL and OTel tracing
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys from cache with OTel tracing
func (r *RedisCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

// =============================================================================
// Per-user key helpers
// =============================================================================

// SetHomeDashboard caches the assembled home dashboard for a user
func (r *RedisCacheRepository) SetHomeDashboard(ctx context.Context, userID string, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, homeDashboardKeyPrefix+userID, data, ttl)
}

// GetHomeDashboard retrieves the cached home dashboard for a user
func (r *RedisCacheRepository) GetHomeDashboard(ctx context.Context, userID string, dest interface{}) error {
	return r.Get(ctx, homeDashboardKeyPrefix+userID, dest)
}

// InvalidateHomeDashboard removes the cached home dashboard for a user.
// Called whenever routines or sessions change, so a stale suggestion is
// never served after a write.
func (r *RedisCacheRepository) InvalidateHomeDashboard(ctx context.Context, userID string) error {
	return r.Delete(ctx, homeDashboardKeyPrefix+userID)
}

// InvalidateRoutineList removes the cached routine list for a user
func (r *RedisCacheRepository) InvalidateRoutineList(ctx context.Context, userID string) error {
	return r.Delete(ctx, routineListKeyPrefix+userID)
}

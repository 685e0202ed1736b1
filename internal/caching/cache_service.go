package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts Redis for the read-heavy corners of the API: dashboard
// snapshots and short-lived rate-limit counters. Cache misses are returned as
// (nil, nil) so callers fall through to the store.
type CacheService interface {
	GetDashboard(ctx context.Context, role string, userID uuid.UUID, dest interface{}) (bool, error)
	SetDashboard(ctx context.Context, role string, userID uuid.UUID, payload interface{}, ttl time.Duration) error
	InvalidateDashboard(ctx context.Context, role string, userID uuid.UUID) error

	IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	IncrementRateLimit(ctx context.Context, key string, window time.Duration) error

	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: redis ping failed on initialization: %v (address: %s)", pingErr, addr)
	}

	return &redisCacheService{client: client}
}

func dashboardKey(role string, userID uuid.UUID) string {
	return fmt.Sprintf("rentora:dashboard:%s:%s", role, userID.String())
}

func (r *redisCacheService) GetDashboard(ctx context.Context, role string, userID uuid.UUID, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, dashboardKey(role, userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) SetDashboard(ctx context.Context, role string, userID uuid.UUID, payload interface{}, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, dashboardKey(role, userID), data, ttl).Err()
}

func (r *redisCacheService) InvalidateDashboard(ctx context.Context, role string, userID uuid.UUID) error {
	return r.client.Del(ctx, dashboardKey(role, userID)).Err()
}

func (r *redisCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Get(ctx, "rentora:ratelimit:"+key).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return count >= limit, nil
}

func (r *redisCacheService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) error {
	fullKey := "rentora:ratelimit:" + key
	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, fullKey)
	pipe.Expire(ctx, fullKey, window)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

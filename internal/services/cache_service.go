package services

import (
	"context"
	"time"
)

// CacheService is the subset of pkg/cache.RedisCache the services rely on. A
// nil CacheService disables caching.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

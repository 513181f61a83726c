package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// PriceCache holds previously resolved oracle prices keyed by leg descriptor.
// Only successful oracle prices are stored, so a cache hit can never replay a
// fallback or manual value.
type PriceCache interface {
	Get(ctx context.Context, key string) (float64, bool)
	Set(ctx context.Context, key string, price float64) error
}

const priceCacheTTL = 6 * time.Hour

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (float64, bool) {
	val, err := r.client.Get(ctx, key).Float64()
	if err != nil {
		return 0, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, price float64) error {
	return r.client.Set(ctx, key, price, priceCacheTTL).Err()
}

// MemoryCache is the in-process default when no Redis address is configured.
type MemoryCache struct {
	mu     sync.RWMutex
	prices map[string]float64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{prices: make(map[string]float64)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	price, ok := m.prices[key]
	return price, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, price float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[key] = price
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Las entradas memoizan cálculos de una sesión, no datos duraderos.
const cacheTTL = 1 * time.Hour

const keyPrefix = "loan-amortizer:"

// RedisCache is the opt-in CacheRepository backend, selected by config.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, keyPrefix+key, value, cacheTTL).Err()
}

package external

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"weathrly.app/catalog"
	"weathrly.app/internal/config"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// RedisCatalog implements the FallbackCatalog port as a Redis hash of city name to bundle JSON
type RedisCatalog struct {
	client *redis.Client
	key    string
}

// NewRedisCatalog connects to Redis and returns a catalog stored under key
func NewRedisCatalog(cfg *config.RedisConfig, key string) (*RedisCatalog, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if key == "" {
		return nil, errors.NewConfigurationError("redis catalog key cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCatalog{client: client, key: key}, nil
}

// Seed writes entries whose city is not yet present. Existing entries are left untouched
// so operators can edit the hash in place. It returns the number of cities added.
func (r *RedisCatalog) Seed(ctx context.Context, entries []catalog.Entry) (int, error) {
	added := 0
	for _, entry := range entries {
		payload, err := json.Marshal(entry.BundleData)
		if err != nil {
			return added, errors.NewCacheError("failed to encode fallback bundle", err)
		}

		ok, err := r.client.HSetNX(ctx, r.key, entry.City, payload).Result()
		if err != nil {
			return added, errors.NewCacheError("redis hsetnx operation failed", err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Lookup returns the bundle stored under the exact city name
func (r *RedisCatalog) Lookup(ctx context.Context, city string) (*ports.BundleData, error) {
	val, err := r.client.HGet(ctx, r.key, city).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("city not in fallback catalog")
		}
		return nil, errors.NewCacheError("redis hget operation failed", err)
	}

	var bundle ports.BundleData
	if err := json.Unmarshal(val, &bundle); err != nil {
		return nil, errors.NewCacheError("failed to decode fallback bundle", err)
	}
	return &bundle, nil
}

// Cities returns the catalogued city names in sorted order
func (r *RedisCatalog) Cities(ctx context.Context) ([]string, error) {
	cities, err := r.client.HKeys(ctx, r.key).Result()
	if err != nil {
		return nil, errors.NewCacheError("redis hkeys operation failed", err)
	}
	sort.Strings(cities)
	return cities, nil
}

func (r *RedisCatalog) Backend() string {
	return "redis"
}

// Ping checks if Redis connection is alive
func (r *RedisCatalog) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCatalog) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/callsight/callsight/internal/domain/entities"
	"github.com/callsight/callsight/pkg/config"
)

const analysisKeyPrefix = "analysis:"

// RedisCache stores completed analyses in Redis keyed by transcript
// fingerprint. It satisfies the analysis service's cache interface.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg *config.Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.Redis.CacheTTL,
	}, nil
}

// Get returns the cached analysis for the key, or (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*entities.AgentAnalysis, error) {
	raw, err := c.client.Get(ctx, analysisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var analysis entities.AgentAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode cached analysis: %w", err)
	}
	return &analysis, nil
}

// Set stores the analysis under the key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, analysis *entities.AgentAnalysis) error {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := c.client.Set(ctx, analysisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}

// Close releases the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

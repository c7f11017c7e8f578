package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tripglide/car-recommendation-service/internal/domain"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// ContentKey builds the cache key of a content-based request. Inputs are
// lowercased so equivalent requests share an entry.
func ContentKey(location, carType, maxPrice, ac, mileage string) string {
	parts := []string{location, carType, maxPrice, ac, mileage}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return "rec:content:" + strings.Join(parts, ":")
}

// CollaborativeKey builds the cache key of a collaborative request.
func CollaborativeKey(userID int64, location string) string {
	return fmt.Sprintf("rec:cf:%s:user:%d", strings.ToLower(strings.TrimSpace(location)), userID)
}

// Get fetches cached recommendations. The second return value reports a hit.
func (c *Cache) Get(ctx context.Context, key string) ([]domain.CarDetail, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var details []domain.CarDetail
	if err := json.Unmarshal([]byte(val), &details); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}
	return details, true, nil
}

// Set stores recommendations under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, details []domain.CarDetail) error {
	val, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

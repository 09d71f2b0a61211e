package redis

import (
	"context"
	"courseHub/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	trendingKey = "catalog:trending"
	trendingTTL = 5 * time.Minute
)

var ErrCacheMiss = errors.New("cache miss")

// TrendingCache keeps the trending ranking warm between catalog reads. A cache
// failure is never fatal to a request; callers fall back to the database.
type TrendingCache struct {
	client *redis.Client
}

func NewTrendingCache(client *redis.Client) *TrendingCache {
	return &TrendingCache{
		client: client,
	}
}

func (c *TrendingCache) Get(ctx context.Context) ([]domain.TrendingCourse, error) {
	val, err := c.client.Get(ctx, trendingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read trending cache: %w", err)
	}

	var courses []domain.TrendingCourse
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trending cache: %w", err)
	}

	return courses, nil
}

func (c *TrendingCache) Set(ctx context.Context, courses []domain.TrendingCourse) error {
	jsonData, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("failed to marshal trending courses: %w", err)
	}

	if err := c.client.Set(ctx, trendingKey, jsonData, trendingTTL).Err(); err != nil {
		return fmt.Errorf("failed to store trending cache: %w", err)
	}

	return nil
}

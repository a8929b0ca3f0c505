package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores one generated recommendation per user and
// date. A miss returns "" with a nil error.
type RecommendationCache interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (string, error)
	Set(ctx context.Context, userID uuid.UUID, date, text string, ttl time.Duration) error
}

type recommendationCache struct {
	rdb *redis.Client
}

func NewRecommendationCache(rdb *redis.Client) RecommendationCache {
	return &recommendationCache{rdb: rdb}
}

func recommendationKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("recommendation:%s:%s", userID, date)
}

func (c *recommendationCache) Get(ctx context.Context, userID uuid.UUID, date string) (string, error) {
	text, err := c.rdb.Get(ctx, recommendationKey(userID, date)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *recommendationCache) Set(ctx context.Context, userID uuid.UUID, date, text string, ttl time.Duration) error {
	return c.rdb.Set(ctx, recommendationKey(userID, date), text, ttl).Err()
}

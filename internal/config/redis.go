package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects to Redis for the refresh-token blacklist and the AI
// recommendation cache.
func NewRedis(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return client, nil
}

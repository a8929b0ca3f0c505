package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepository blacklists refresh tokens in redis until they would
// have expired anyway. A blacklisted token can no longer be rotated.
type TokenRepository interface {
	BlacklistRefresh(ctx context.Context, token string, ttl time.Duration) error
	IsRefreshBlacklisted(ctx context.Context, token string) (bool, error)
}

type tokenRepository struct {
	rdb *redis.Client
}

func NewTokenRepository(rdb *redis.Client) TokenRepository {
	return &tokenRepository{rdb: rdb}
}

// blacklistKey hashes the token so the raw JWT never lands in redis.
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:blacklist:" + hex.EncodeToString(sum[:])
}

func (r *tokenRepository) BlacklistRefresh(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return r.rdb.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (r *tokenRepository) IsRefreshBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := r.rdb.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

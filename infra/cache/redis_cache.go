package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// RedisDenylist implements TokenDenylist using Redis keys that expire with the token.
type RedisDenylist struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisDenylist creates a RedisDenylist from a redis:// URL.
func NewRedisDenylist(url, prefix string, logger *slog.Logger) (*RedisDenylist, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisDenylistWithOptions(opt, prefix, logger), nil
}

// NewRedisDenylistWithOptions creates a new RedisDenylist
// from redis.Options.
func NewRedisDenylistWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisDenylist {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(opt)
	return &RedisDenylist{client: client, prefix: prefix, logger: logger}
}

func (r *RedisDenylist) key(token string) string {
	return r.prefix + hashToken(token)
}

// Ping checks that the server is reachable.
func (r *RedisDenylist) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 || token == "" {
		return nil
	}
	key := r.key(token)
	if err := r.client.Set(ctx, key, 1, ttl).Err(); err != nil {
		r.logger.Error("Redis denylist set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis denylist set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := r.key(token)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Redis denylist lookup error", "key", key, "error", err)
		return false, err
	}
	return n > 0, nil
}

// Close releases the underlying connection pool.
func (r *RedisDenylist) Close() error {
	return r.client.Close()
}

// hashToken keys entries by digest so raw tokens are never stored.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

var _ cache.TokenDenylist = (*RedisDenylist)(nil)

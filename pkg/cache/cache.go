package cache

import (
	"context"
	"time"
)

// TokenDenylist records session tokens revoked by logout until they would have expired anyway.
type TokenDenylist interface {
	// Revoke denies token for ttl. A non-positive ttl is a no-op.
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	// IsRevoked reports whether token is currently denied.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

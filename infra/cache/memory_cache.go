package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
)

// MemoryDenylist implements TokenDenylist using in-memory storage
type MemoryDenylist struct {
	revoked map[string]time.Time
	mu      sync.RWMutex
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryDenylist creates a new in-memory denylist and starts its cleanup loop.
// Call Close to stop the loop.
func NewMemoryDenylist(cleanupInterval time.Duration) *MemoryDenylist {
	d := &MemoryDenylist{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	go d.cleanup(cleanupInterval)
	return d
}

// Revoke stores the token until ttl elapses
func (d *MemoryDenylist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 || token == "" {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[hashToken(token)] = d.now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token is denied and not yet expired
func (d *MemoryDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	expiresAt, ok := d.revoked[hashToken(token)]
	if !ok {
		return false, nil
	}
	return d.now().Before(expiresAt), nil
}

// Close stops the cleanup loop.
func (d *MemoryDenylist) Close() error {
	d.once.Do(func() { close(d.stop) })
	return nil
}

// Len returns the number of stored entries, expired or not.
func (d *MemoryDenylist) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.revoked)
}

// cleanup removes expired entries until Close is called
func (d *MemoryDenylist) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.purge()
		}
	}
}

func (d *MemoryDenylist) purge() {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for key, expiresAt := range d.revoked {
		if !now.Before(expiresAt) {
			delete(d.revoked, key)
		}
	}
}

var _ cache.TokenDenylist = (*MemoryDenylist)(nil)

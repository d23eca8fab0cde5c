package cache

import (
	"context"
	"sync"
	"time"

	"github.com/i-shreyansh/portfolio/internal/application/service"
)

type memoryEntry struct {
	page    []byte
	expires time.Time
}

// memoryPageCache is used when no Redis address is configured. The key
// space is tiny (theme × section × menu) so there is no eviction beyond
// the TTL.
type memoryPageCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryPageCache(ttl time.Duration) service.PageCache {
	return &memoryPageCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *memoryPageCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || (c.ttl > 0 && c.now().After(e.expires)) {
		return nil, service.ErrCacheMiss
	}
	return append([]byte(nil), e.page...), nil
}

func (c *memoryPageCache) Set(ctx context.Context, key string, page []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		page:    append([]byte(nil), page...),
		expires: c.now().Add(c.ttl),
	}
	return nil
}

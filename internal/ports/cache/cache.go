package cache

import (
	"context"
	"time"
)

// PageCache stores rendered pages for a bounded time. Entries are never
// invalidated by writes; a page may be stale for up to its TTL.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}

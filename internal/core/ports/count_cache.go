package ports

import (
	"context"
	"time"
)

// CountCache is a short-lived cache for dashboard record counts. A miss is
// reported via ok=false, not an error; errors are reserved for backend
// failures and callers are expected to fall through to the store on either.
type CountCache interface {
	Get(ctx context.Context, key string) (n int64, ok bool, err error)
	Set(ctx context.Context, key string, n int64, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

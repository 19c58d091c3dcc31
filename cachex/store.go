package cachex

import (
	"context"
	"time"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// Store persists entries. Drivers may drop entries after ttl, but the
// entry's own ExpiresAt decides whether it is alive.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

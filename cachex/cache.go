package cachex

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/wsapix/logx"
)

// Cache stores JSON values with a per-write TTL on top of a Store.
// Reads never fail: store errors and expired entries are misses.
type Cache struct {
	store  Store
	now    func() time.Time
	logger *logx.Logger
}

// Option configures a Cache
type Option func(*Cache)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger overrides the logger
func WithLogger(l *logx.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New creates a cache over store
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		now:    time.Now,
		logger: logx.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read returns the live value for key. A cached JSON null is present.
func (c *Cache) Read(ctx context.Context, key string) (json.RawMessage, bool) {
	entry, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed, treating as miss: %v", err)
		return nil, false
	}
	if !found {
		c.logger.Debug("cache miss")
		return nil, false
	}
	if entry.Expired(c.now()) {
		c.logger.Debug("cache entry expired")
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("cache cleanup failed: %v", err)
		}
		return nil, false
	}

	c.logger.Debug("cache hit")
	if entry.Value == nil {
		return json.RawMessage("null"), true
	}
	return entry.Value, true
}

// Write stores value for ttl, replacing any previous entry. A ttl <= 0 is
// rejected and clears the key instead.
func (c *Cache) Write(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		c.logger.Debug("cache write rejected: ttl %s", ttl)
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("cache cleanup failed: %v", err)
		}
		return cacheErrors.New(ErrInvalidTTL).WithDetail("ttl", ttl.String())
	}

	data, err := json.Marshal(value)
	if err != nil {
		return cacheErrors.NewWithCause(ErrEncodeFailed, err)
	}

	entry := Entry{Value: data, ExpiresAt: c.now().Add(ttl).UnixMilli()}
	if err := c.store.Set(ctx, key, entry, ttl); err != nil {
		c.logger.Warn("cache write failed: %v", err)
		return err
	}
	return nil
}

// Delete removes key
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

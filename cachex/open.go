package cachex

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	DefaultKeyPrefix = "wsapix:"
	pingTimeout      = 5 * time.Second
)

// Config selects and configures a store driver
type Config struct {
	Driver    string
	RedisURL  string
	KeyPrefix string
}

// Open builds the store named by cfg.Driver. An empty driver means memory.
// The redis driver pings the server before returning.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, cacheErrors.NewWithCause(ErrConnectFailed, err).WithDetail("reason", "invalid redis url")
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, cacheErrors.NewWithCause(ErrConnectFailed, err).WithDetail("addr", opts.Addr)
		}

		prefix := cfg.KeyPrefix
		if prefix == "" {
			prefix = DefaultKeyPrefix
		}
		return NewRedisStore(client, prefix), nil
	default:
		return nil, cacheErrors.New(ErrUnknownDriver).WithDetail("driver", cfg.Driver)
	}
}

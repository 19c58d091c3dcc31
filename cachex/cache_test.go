package cachex_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Abraxas-365/wsapix/cachex"
	"github.com/Abraxas-365/wsapix/cachex/mocks"
	"github.com/Abraxas-365/wsapix/errx"
)

type clock struct{ t time.Time }

func newClock() *clock {
	return &clock{t: time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestReadWrite(t *testing.T) {
	ctx := context.Background()
	clk := newClock()
	c := cachex.New(cachex.NewMemoryStore(), cachex.WithClock(clk.now))

	_, found := c.Read(ctx, "never")
	assert.False(t, found)

	require.NoError(t, c.Write(ctx, "k", map[string]any{"id": "1"}, time.Minute))
	v, found := c.Read(ctx, "k")
	require.True(t, found)
	assert.JSONEq(t, `{"id":"1"}`, string(v))

	require.NoError(t, c.Write(ctx, "k", []int{1, 2}, time.Minute))
	v, found = c.Read(ctx, "k")
	require.True(t, found)
	assert.JSONEq(t, `[1,2]`, string(v))
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	clk := newClock()
	store := cachex.NewMemoryStore()
	c := cachex.New(store, cachex.WithClock(clk.now))

	require.NoError(t, c.Write(ctx, "k", "v", 2*time.Second))

	clk.advance(2 * time.Second)
	_, found := c.Read(ctx, "k")
	assert.True(t, found, "alive at exactly ExpiresAt")

	clk.advance(time.Millisecond)
	_, found = c.Read(ctx, "k")
	assert.False(t, found)
	assert.Equal(t, 0, store.Len(), "dead entry removed on miss")
}

func TestNullIsPresent(t *testing.T) {
	ctx := context.Background()
	c := cachex.New(cachex.NewMemoryStore())

	require.NoError(t, c.Write(ctx, "k", nil, time.Minute))

	v, found := c.Read(ctx, "k")
	require.True(t, found)
	assert.Equal(t, "null", string(v))
}

func TestNonPositiveTTLIsRejected(t *testing.T) {
	ctx := context.Background()
	c := cachex.New(cachex.NewMemoryStore())
	require.NoError(t, c.Write(ctx, "k", "old", time.Minute))

	for _, ttl := range []time.Duration{0, -time.Second} {
		err := c.Write(ctx, "k", "new", ttl)
		require.Error(t, err)
		assert.True(t, errx.IsCode(err, cachex.ErrInvalidTTL))

		_, found := c.Read(ctx, "k")
		assert.False(t, found)
	}
}

func TestMakeKeyIsInjective(t *testing.T) {
	pairs := [][2][]string{
		{{"a\x1fb", "c"}, {"a", "b\x1fc"}},
		{{"a\x1b", "\x1fb"}, {"a\x1b\x1f", "b"}},
		{{"ab", ""}, {"a", "b"}},
		{{""}, {"", ""}},
	}
	for _, p := range pairs {
		assert.NotEqual(t, cachex.MakeKey(p[0]...), cachex.MakeKey(p[1]...), "%q vs %q", p[0], p[1])
	}

	assert.Equal(t, cachex.MakeKey("contacts", "get", "1@s.whatsapp.net"), cachex.MakeKey("contacts", "get", "1@s.whatsapp.net"))
}

func TestStoreErrorIsAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	c := cachex.New(store)

	store.EXPECT().Get(gomock.Any(), "k").Return(cachex.Entry{}, false, errors.New("connection reset"))

	_, found := c.Read(context.Background(), "k")
	assert.False(t, found)
}

func TestWritePassesTTLToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	clk := newClock()
	c := cachex.New(store, cachex.WithClock(clk.now))

	store.EXPECT().
		Set(gomock.Any(), "k", cachex.Entry{Value: json.RawMessage(`"v"`), ExpiresAt: clk.t.Add(time.Minute).UnixMilli()}, time.Minute).
		Return(nil)

	assert.NoError(t, c.Write(context.Background(), "k", "v", time.Minute))
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cachex.NewRedisStore(client, "test:")
	clk := newClock()
	c := cachex.New(store, cachex.WithClock(clk.now))

	require.NoError(t, c.Write(ctx, "k", map[string]any{"ok": true}, time.Minute))
	assert.True(t, mr.Exists("test:k"))

	v, found := c.Read(ctx, "k")
	require.True(t, found)
	assert.JSONEq(t, `{"ok":true}`, string(v))

	clk.advance(time.Minute + time.Millisecond)
	_, found = c.Read(ctx, "k")
	assert.False(t, found)
	assert.False(t, mr.Exists("test:k"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := cachex.Open(ctx, cachex.Config{})
	require.NoError(t, err)
	assert.IsType(t, &cachex.MemoryStore{}, store)

	mr := miniredis.RunT(t)
	store, err = cachex.Open(ctx, cachex.Config{Driver: "redis", RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &cachex.RedisStore{}, store)

	_, err = cachex.Open(ctx, cachex.Config{Driver: "disk"})
	assert.True(t, errx.IsCode(err, cachex.ErrUnknownDriver))
}

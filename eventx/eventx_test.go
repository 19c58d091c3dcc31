package eventx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/eventx"
)

type note struct {
	Text string `json:"text"`
}

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 6, 8, 18, 57, 52, 0, time.UTC)
	e := eventx.NewEvent("wsapi.message", note{Text: "hi"}, eventx.EventOptions{Source: "webhook", Timestamp: at})

	_, err := uuid.Parse(e.ID())
	require.NoError(t, err)
	assert.Equal(t, "wsapi.message", e.Type())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, "webhook", e.Source())
	assert.NotNil(t, e.Metadata())
	assert.Equal(t, "hi", e.Data().Text)
}

func TestPublishOrderAndWildcard(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()

	var calls []string
	require.NoError(t, bus.Subscribe(ctx, eventx.Wildcard, func(ctx context.Context, e eventx.Event) error {
		calls = append(calls, "any:"+e.Type())
		return nil
	}))
	require.NoError(t, bus.Subscribe(ctx, "wsapi.message", func(ctx context.Context, e eventx.Event) error {
		calls = append(calls, "first")
		return nil
	}))
	require.NoError(t, bus.Subscribe(ctx, "wsapi.message", func(ctx context.Context, e eventx.Event) error {
		calls = append(calls, "second")
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, eventx.NewEvent("wsapi.message", note{})))
	require.NoError(t, bus.Publish(ctx, eventx.NewEvent("wsapi.logged_in", note{})))

	assert.Equal(t, []string{"first", "second", "any:wsapi.message", "any:wsapi.logged_in"}, calls)
	assert.Equal(t, 2, bus.HandlerCount("wsapi.message"))
	assert.Equal(t, []string{"*", "wsapi.message"}, bus.ListEventTypes())
}

func TestHandlerFailureDoesNotStopDelivery(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()

	delivered := 0
	_ = bus.Subscribe(ctx, "t", func(ctx context.Context, e eventx.Event) error { return errors.New("boom") })
	_ = bus.Subscribe(ctx, "t", func(ctx context.Context, e eventx.Event) error {
		delivered++
		return nil
	})

	err := bus.Publish(ctx, eventx.NewEvent("t", note{}))

	require.Error(t, err)
	assert.True(t, errx.IsCode(err, eventx.ErrHandlerFailed))
	assert.Equal(t, 1, delivered)
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()
	_ = bus.Subscribe(ctx, "t", func(ctx context.Context, e eventx.Event) error { return errors.New("never") })

	require.NoError(t, bus.Unsubscribe(ctx, "t"))

	assert.NoError(t, bus.Publish(ctx, eventx.NewEvent("t", note{})))
	assert.Zero(t, bus.HandlerCount("t"))
}

func TestSubscribeTyped(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()

	var got string
	require.NoError(t, eventx.SubscribeTyped(ctx, bus, "t", func(ctx context.Context, e eventx.TypedEvent[note]) error {
		got = e.Data().Text
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, eventx.NewEvent("t", note{Text: "typed"})))
	assert.Equal(t, "typed", got)

	err := bus.Publish(ctx, eventx.NewEvent("t", 42))
	assert.ErrorIs(t, err, &errx.Error{Code: eventx.ErrInvalidEventType})
}

func TestJSONRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 8, 18, 57, 52, 0, time.UTC)
	e := eventx.NewEvent("wsapi.message", note{Text: "hi"}, eventx.EventOptions{
		Source:    "webhook",
		Metadata:  map[string]any{"instanceId": "ins-1"},
		Timestamp: at,
	})

	data, err := eventx.ToJSON(e)
	require.NoError(t, err)

	back, err := eventx.FromJSON[note](data)
	require.NoError(t, err)
	assert.Equal(t, e.ID(), back.ID())
	assert.Equal(t, "hi", back.Data().Text)
	assert.True(t, at.Equal(back.Timestamp()))
	assert.Equal(t, "ins-1", back.Metadata()["instanceId"])

	_, err = eventx.ToJSON(eventx.NewEvent("bad", make(chan int)))
	assert.True(t, errx.IsCode(err, eventx.ErrSerializationFailed))
}

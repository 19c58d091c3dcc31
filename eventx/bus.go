package eventx

import (
	"context"
	"reflect"
)

// Wildcard subscribes a handler to every event type
const Wildcard = "*"

// EventHandler processes one event
type EventHandler func(ctx context.Context, e Event) error

// TypedEventHandler processes events with a known payload type
type TypedEventHandler[T any] func(ctx context.Context, e TypedEvent[T]) error

// EventBus delivers published events to subscribed handlers
type EventBus interface {
	// Subscribe registers a handler for an event type, or Wildcard
	Subscribe(ctx context.Context, eventType string, handler EventHandler) error

	// Unsubscribe removes every handler for an event type
	Unsubscribe(ctx context.Context, eventType string) error

	// Publish delivers an event to its handlers and the wildcard handlers
	Publish(ctx context.Context, event Event) error

	// ListEventTypes returns the event types with handlers
	ListEventTypes() []string

	// HandlerCount returns the number of handlers for an event type
	HandlerCount(eventType string) int
}

// SubscribeTyped registers a handler that only accepts payloads of type T
func SubscribeTyped[T any](ctx context.Context, bus EventBus, eventType string, handler TypedEventHandler[T]) error {
	return bus.Subscribe(ctx, eventType, func(ctx context.Context, e Event) error {
		if typed, ok := e.(TypedEvent[T]); ok {
			return handler(ctx, typed)
		}
		return ErrorRegistry.New(ErrInvalidEventType).
			WithDetail("expected_type", reflect.TypeOf((*T)(nil)).Elem().String()).
			WithDetail("actual_type", reflect.TypeOf(e.Payload()).String())
	})
}

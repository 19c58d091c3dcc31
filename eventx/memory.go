package eventx

import (
	"context"
	"sort"
	"sync"
)

// MemoryBus is a synchronous in-process bus. Handlers run in subscription
// order, type handlers before wildcard handlers.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]EventHandler)}
}

func (b *MemoryBus) Subscribe(ctx context.Context, eventType string, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

func (b *MemoryBus) Unsubscribe(ctx context.Context, eventType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, eventType)
	return nil
}

// Publish runs every matching handler even when one fails. The first
// failure is returned.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.handlers[event.Type()]...)
	if event.Type() != Wildcard {
		handlers = append(handlers, b.handlers[Wildcard]...)
	}
	b.mu.RUnlock()

	var first error
	for _, handle := range handlers {
		if err := handle(ctx, event); err != nil && first == nil {
			first = ErrorRegistry.NewWithCause(ErrHandlerFailed, err).
				WithDetail("event_id", event.ID()).
				WithDetail("event_type", event.Type())
		}
	}
	return first
}

func (b *MemoryBus) ListEventTypes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	types := make([]string, 0, len(b.handlers))
	for t := range b.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (b *MemoryBus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

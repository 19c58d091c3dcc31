package eventx

import (
	"time"

	"github.com/google/uuid"
)

// Event is something that happened, published on a bus
type Event interface {
	ID() string
	Type() string
	Timestamp() time.Time
	Source() string
	Payload() any
	Metadata() map[string]any
}

// TypedEvent gives typed access to the payload
type TypedEvent[T any] interface {
	Event
	Data() T
}

// EventOptions configure event creation
type EventOptions struct {
	Source    string
	Metadata  map[string]any
	Timestamp time.Time
}

// BaseEvent implements TypedEvent
type BaseEvent[T any] struct {
	id        string
	eventType string
	timestamp time.Time
	source    string
	data      T
	metadata  map[string]any
}

// NewEvent creates an event with a fresh uuid. A zero Timestamp in opts
// means now.
func NewEvent[T any](eventType string, data T, opts ...EventOptions) *BaseEvent[T] {
	return NewEventWithID(uuid.NewString(), eventType, data, opts...)
}

// NewEventWithID creates an event with a known id
func NewEventWithID[T any](id, eventType string, data T, opts ...EventOptions) *BaseEvent[T] {
	options := EventOptions{Source: "wsapix"}
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.Metadata == nil {
		options.Metadata = make(map[string]any)
	}
	if options.Timestamp.IsZero() {
		options.Timestamp = time.Now()
	}

	return &BaseEvent[T]{
		id:        id,
		eventType: eventType,
		timestamp: options.Timestamp,
		source:    options.Source,
		data:      data,
		metadata:  options.Metadata,
	}
}

func (e *BaseEvent[T]) ID() string               { return e.id }
func (e *BaseEvent[T]) Type() string             { return e.eventType }
func (e *BaseEvent[T]) Timestamp() time.Time     { return e.timestamp }
func (e *BaseEvent[T]) Source() string           { return e.source }
func (e *BaseEvent[T]) Payload() any             { return e.data }
func (e *BaseEvent[T]) Metadata() map[string]any { return e.metadata }
func (e *BaseEvent[T]) Data() T                  { return e.data }

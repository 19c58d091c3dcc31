package eventx

import (
	"encoding/json"
	"time"
)

// SerializableEvent is the wire form of an event
type SerializableEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
	Data      json.RawMessage `json:"data"`
	Metadata  map[string]any  `json:"metadata"`
}

// ToSerializable converts an event to its wire form
func ToSerializable(event Event) (*SerializableEvent, error) {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return nil, ErrorRegistry.NewWithCause(ErrSerializationFailed, err).
			WithDetail("event_id", event.ID()).
			WithDetail("event_type", event.Type())
	}

	return &SerializableEvent{
		ID:        event.ID(),
		Type:      event.Type(),
		Timestamp: event.Timestamp(),
		Source:    event.Source(),
		Data:      data,
		Metadata:  event.Metadata(),
	}, nil
}

// FromSerializable decodes the payload into T
func FromSerializable[T any](se *SerializableEvent) (TypedEvent[T], error) {
	var data T
	if err := json.Unmarshal(se.Data, &data); err != nil {
		return nil, ErrorRegistry.NewWithCause(ErrSerializationFailed, err).
			WithDetail("event_id", se.ID).
			WithDetail("event_type", se.Type)
	}

	return NewEventWithID(se.ID, se.Type, data, EventOptions{
		Source:    se.Source,
		Metadata:  se.Metadata,
		Timestamp: se.Timestamp,
	}), nil
}

// ToJSON serializes an event
func ToJSON(event Event) ([]byte, error) {
	se, err := ToSerializable(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(se)
}

// FromJSON deserializes an event with payload type T
func FromJSON[T any](data []byte) (TypedEvent[T], error) {
	var se SerializableEvent
	if err := json.Unmarshal(data, &se); err != nil {
		return nil, ErrorRegistry.NewWithCause(ErrSerializationFailed, err).
			WithDetail("operation", "unmarshal_serializable_event")
	}
	return FromSerializable[T](&se)
}

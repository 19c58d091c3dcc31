// Package eventx delivers events to subscribed handlers.
//
// The webhook translator publishes every emitted record as an event of type
// "wsapi.<eventType>":
//
//	bus := eventx.NewMemoryBus()
//	bus.Subscribe(ctx, "wsapi.message", func(ctx context.Context, e eventx.Event) error {
//		record := e.Payload().(flowx.Record)
//		...
//	})
//
// Subscribing to eventx.Wildcard receives every event.
package eventx

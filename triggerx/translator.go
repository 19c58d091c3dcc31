package triggerx

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/eventx"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/logx"
	"github.com/Abraxas-365/wsapix/validatex"
)

// Kind is the terminal state of one delivery
type Kind string

const (
	KindReject Kind = "reject"
	KindSkip   Kind = "skip"
	KindEmit   Kind = "emit"
)

// Request is one inbound webhook delivery
type Request struct {
	Headers http.Header
	Body    []byte
}

// Outcome is what the host answers and, for Emit, the produced record
type Outcome struct {
	Kind   Kind
	Status int
	Body   map[string]any
	Record *flowx.Record
	Err    error
}

// Event is the typed view of a structurally valid delivery
type Event struct {
	InstanceID string         `json:"instanceId"`
	ReceivedAt string         `json:"receivedAt"`
	EventType  string         `json:"eventType"`
	EventData  map[string]any `json:"eventData"`
}

// MediaDownloader fetches media attached to message events
type MediaDownloader interface {
	DownloadMedia(ctx context.Context, mediaID string) (*flowx.Binary, error)
}

// Translator turns webhook deliveries into records
type Translator struct {
	opts   Options
	media  MediaDownloader
	bus    eventx.EventBus
	now    func() time.Time
	newID  func() string
	logger *logx.Logger
}

// Option configures a Translator
type Option func(*Translator)

// WithBus publishes every emitted record as "wsapi.<eventType>"
func WithBus(bus eventx.EventBus) Option {
	return func(t *Translator) { t.bus = bus }
}

// WithClock sets the clock used for downloadedAt
func WithClock(now func() time.Time) Option {
	return func(t *Translator) { t.now = now }
}

func WithLogger(l *logx.Logger) Option {
	return func(t *Translator) { t.logger = l }
}

// NewTranslator validates opts after filling defaults. media may be nil
// unless AutoDownloadMedia is set.
func NewTranslator(opts Options, media MediaDownloader, options ...Option) (*Translator, error) {
	opts = opts.withDefaults()
	if err := validatex.Struct(opts); err != nil {
		return nil, err
	}
	if opts.AutoDownloadMedia && media == nil {
		return nil, triggerErrors.NewWithMessage(ErrInvalidOptions, "Auto-download needs a media downloader")
	}

	t := &Translator{
		opts:   opts,
		media:  media,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logx.GetLogger(),
	}
	for _, opt := range options {
		opt(t)
	}
	return t, nil
}

// Options returns the effective options
func (t *Translator) Options() Options {
	return t.opts
}

// Handle runs one delivery through auth, validation, filtering, shaping and
// media enrichment. It never panics on input; every failure is an Outcome.
func (t *Translator) Handle(ctx context.Context, r Request) Outcome {
	if t.opts.Auth.Enabled && !t.authorized(r.Headers) {
		t.logger.Info("webhook rejected: unauthorized")
		return Outcome{
			Kind:   KindReject,
			Status: http.StatusUnauthorized,
			Body:   map[string]any{"error": "Unauthorized", "message": "Invalid or missing authentication header"},
			Err:    triggerErrors.New(ErrUnauthorized).WithDetail("header", t.opts.Auth.HeaderName),
		}
	}

	raw, event, ok := decode(r.Body)
	if !ok {
		t.logger.Info("webhook rejected: invalid payload")
		return Outcome{
			Kind:   KindReject,
			Status: http.StatusBadRequest,
			Body: map[string]any{
				"error":    "Bad Request",
				"message":  "Invalid webhook payload. Expected format: { eventType: string, eventData: object }",
				"received": raw,
			},
			Err: triggerErrors.New(ErrInvalidPayload),
		}
	}

	if !t.subscribed(event.EventType) {
		t.logger.Debug("webhook skipped: %s not subscribed", event.EventType)
		return Outcome{
			Kind:   KindSkip,
			Status: http.StatusOK,
			Body: map[string]any{
				"message":          "Event type not subscribed",
				"eventType":        event.EventType,
				"subscribedEvents": append([]string(nil), t.opts.Events...),
			},
		}
	}

	record := &flowx.Record{JSON: t.shape(raw.(map[string]any), event)}
	if t.opts.AutoDownloadMedia {
		t.enrich(ctx, event, record)
	}

	eventID := t.newID()
	t.publish(ctx, eventID, event, record)
	t.logger.With("instanceId", event.InstanceID).Info("webhook emitted %s", event.EventType)

	return Outcome{
		Kind:   KindEmit,
		Status: http.StatusOK,
		Body:   map[string]any{"received": true, "eventId": eventID},
		Record: record,
	}
}

func (t *Translator) authorized(h http.Header) bool {
	got := h.Get(t.opts.Auth.HeaderName)
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(t.opts.Auth.HeaderValue)) == 1
}

func (t *Translator) subscribed(eventType string) bool {
	for _, e := range t.opts.Events {
		if e == eventType {
			return true
		}
	}
	return false
}

// decode returns the decoded body, or nil when it is not JSON, and whether
// it has a non-empty string eventType and an object eventData
func decode(body []byte) (any, Event, bool) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, Event{}, false
	}
	obj, isObj := raw.(map[string]any)
	if !isObj {
		return raw, Event{}, false
	}

	eventType, _ := obj["eventType"].(string)
	eventData, isData := obj["eventData"].(map[string]any)
	if eventType == "" || !isData {
		return raw, Event{}, false
	}

	event := Event{EventType: eventType, EventData: eventData}
	event.InstanceID, _ = obj["instanceId"].(string)
	event.ReceivedAt, _ = obj["receivedAt"].(string)
	return raw, event, true
}

// shape builds the output JSON. eventData is copied so enrichment never
// touches rawEvent.
func (t *Translator) shape(raw map[string]any, event Event) map[string]any {
	out := map[string]any{"eventType": event.EventType}
	for _, key := range []string{"instanceId", "receivedAt"} {
		if v, found := raw[key]; found {
			out[key] = v
		}
	}

	data := deepCopy(event.EventData).(map[string]any)
	if t.opts.ParseEventData {
		for k, v := range data {
			out[k] = v
		}
	} else {
		out["eventData"] = data
	}

	if t.opts.IncludeRawEvent {
		out["rawEvent"] = raw
	}
	return out
}

func (t *Translator) publish(ctx context.Context, id string, event Event, record *flowx.Record) {
	if t.bus == nil {
		return
	}
	e := eventx.NewEventWithID(id, "wsapi."+event.EventType, *record, eventx.EventOptions{
		Source:   "wsapi.webhook",
		Metadata: map[string]any{"instanceId": event.InstanceID, "receivedAt": event.ReceivedAt},
	})
	if err := t.bus.Publish(ctx, e); err != nil {
		t.logger.With("eventId", id).Warn("publishing %s failed: %s", e.Type(), errx.MessageOf(err))
	}
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return val
	}
}

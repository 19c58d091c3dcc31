package triggerx_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/eventx"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/triggerx"
	"github.com/Abraxas-365/wsapix/validatex"
)

type downloaderFunc func(ctx context.Context, mediaID string) (*flowx.Binary, error)

func (f downloaderFunc) DownloadMedia(ctx context.Context, mediaID string) (*flowx.Binary, error) {
	return f(ctx, mediaID)
}

var fixedNow = time.Date(2025, 6, 8, 18, 57, 52, 0, time.UTC)

func newTranslator(t *testing.T, opts triggerx.Options, media triggerx.MediaDownloader, extra ...triggerx.Option) *triggerx.Translator {
	t.Helper()
	extra = append([]triggerx.Option{triggerx.WithClock(func() time.Time { return fixedNow })}, extra...)
	tr, err := triggerx.NewTranslator(opts, media, extra...)
	require.NoError(t, err)
	return tr
}

func deliver(tr *triggerx.Translator, body string, headers ...string) triggerx.Outcome {
	h := http.Header{}
	for i := 0; i+1 < len(headers); i += 2 {
		h.Set(headers[i], headers[i+1])
	}
	return tr.Handle(context.Background(), triggerx.Request{Headers: h, Body: []byte(body)})
}

const textMessage = `{"instanceId":"ins-1","receivedAt":"2025-06-08T18:57:50Z","eventType":"message","eventData":{"id":"M1","text":"hi","type":"text"}}`

func TestAuthCheck(t *testing.T) {
	opts := triggerx.DefaultOptions()
	opts.Auth = triggerx.Auth{Enabled: true, HeaderName: "X-Secret", HeaderValue: "s3cret"}
	tr := newTranslator(t, opts, nil)

	for name, headers := range map[string][]string{
		"missing": nil,
		"wrong":   {"X-Secret", "guess"},
		"empty":   {"X-Secret", ""},
	} {
		t.Run(name, func(t *testing.T) {
			out := deliver(tr, textMessage, headers...)

			assert.Equal(t, triggerx.KindReject, out.Kind)
			assert.Equal(t, http.StatusUnauthorized, out.Status)
			assert.Equal(t, map[string]any{"error": "Unauthorized", "message": "Invalid or missing authentication header"}, out.Body)
			assert.Nil(t, out.Record)
			assert.True(t, errx.IsCode(out.Err, triggerx.ErrUnauthorized))
		})
	}

	out := deliver(tr, textMessage, "x-secret", "s3cret")
	assert.Equal(t, triggerx.KindEmit, out.Kind)
}

func TestStructuralValidation(t *testing.T) {
	tr := newTranslator(t, triggerx.DefaultOptions(), nil)

	tests := []struct {
		name     string
		body     string
		received any
	}{
		{"not json", `nope`, nil},
		{"not an object", `[1,2]`, []any{float64(1), float64(2)}},
		{"missing eventData", `{"eventType":"message"}`, map[string]any{"eventType": "message"}},
		{"eventData not an object", `{"eventType":"message","eventData":"x"}`, map[string]any{"eventType": "message", "eventData": "x"}},
		{"empty eventType", `{"eventType":"","eventData":{}}`, map[string]any{"eventType": "", "eventData": map[string]any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := deliver(tr, tt.body)

			assert.Equal(t, triggerx.KindReject, out.Kind)
			assert.Equal(t, http.StatusBadRequest, out.Status)
			assert.Equal(t, "Bad Request", out.Body["error"])
			assert.Equal(t, tt.received, out.Body["received"])
			assert.True(t, errx.IsCode(out.Err, triggerx.ErrInvalidPayload))
		})
	}
}

func TestUnsubscribedEventIsSkipped(t *testing.T) {
	tr := newTranslator(t, triggerx.DefaultOptions(), nil)

	out := deliver(tr, `{"eventType":"logged_in","eventData":{}}`)

	assert.Equal(t, triggerx.KindSkip, out.Kind)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.NoError(t, out.Err)
	assert.Nil(t, out.Record)
	assert.Equal(t, map[string]any{
		"message":          "Event type not subscribed",
		"eventType":        "logged_in",
		"subscribedEvents": []string{"message"},
	}, out.Body)
}

func TestShapeToggle(t *testing.T) {
	flat := newTranslator(t, triggerx.DefaultOptions(), nil)
	out := deliver(flat, textMessage)

	require.Equal(t, triggerx.KindEmit, out.Kind)
	assert.Equal(t, map[string]any{
		"instanceId": "ins-1",
		"receivedAt": "2025-06-08T18:57:50Z",
		"eventType":  "message",
		"id":         "M1",
		"text":       "hi",
		"type":       "text",
	}, out.Record.JSON)
	assert.Equal(t, true, out.Body["received"])
	assert.NotEmpty(t, out.Body["eventId"])

	opts := triggerx.DefaultOptions()
	opts.ParseEventData = false
	nested := newTranslator(t, opts, nil)
	out = deliver(nested, textMessage)

	assert.Equal(t, map[string]any{"id": "M1", "text": "hi", "type": "text"}, out.Record.JSON["eventData"])
	assert.NotContains(t, out.Record.JSON, "text")
}

func TestAllGroupAndCustomEvents(t *testing.T) {
	opts := triggerx.Options{Operation: triggerx.GroupAll, Events: []string{"logged_in", "call_offer"}, ParseEventData: true}
	tr := newTranslator(t, opts, nil)

	assert.Equal(t, triggerx.KindEmit, deliver(tr, `{"eventType":"call_offer","eventData":{"from":"1"}}`).Kind)
	assert.Equal(t, triggerx.KindSkip, deliver(tr, textMessage).Kind)
}

const mediaMessage = `{"instanceId":"ins-1","eventType":"message","eventData":{"type":"media","media":{"id":"MEDIA1","mimeType":"image/jpeg"}}}`

func TestMediaEnrich(t *testing.T) {
	opts := triggerx.DefaultOptions()
	opts.AutoDownloadMedia = true
	opts.IncludeRawEvent = true

	var asked string
	tr := newTranslator(t, opts, downloaderFunc(func(ctx context.Context, id string) (*flowx.Binary, error) {
		asked = id
		return flowx.NewBinary([]byte("jpeg"), "photo.jpg", "image/jpeg"), nil
	}))

	out := deliver(tr, mediaMessage)

	require.Equal(t, triggerx.KindEmit, out.Kind)
	assert.Equal(t, "MEDIA1", asked)
	require.NotNil(t, out.Record.Binary)
	assert.Equal(t, "photo.jpg", out.Record.Binary.FileName)

	media := out.Record.JSON["media"].(map[string]any)
	assert.Equal(t, "2025-06-08T18:57:52Z", media["downloadedAt"])
	assert.Equal(t, true, media["autoDownloaded"])

	raw := out.Record.JSON["rawEvent"].(map[string]any)
	rawMedia := raw["eventData"].(map[string]any)["media"].(map[string]any)
	assert.Equal(t, map[string]any{"id": "MEDIA1", "mimeType": "image/jpeg"}, rawMedia)
}

func TestMediaEnrichNested(t *testing.T) {
	opts := triggerx.DefaultOptions()
	opts.AutoDownloadMedia = true
	opts.ParseEventData = false
	tr := newTranslator(t, opts, downloaderFunc(func(ctx context.Context, id string) (*flowx.Binary, error) {
		return flowx.NewBinary([]byte("x"), "media_"+id, "application/octet-stream"), nil
	}))

	out := deliver(tr, mediaMessage)

	media := out.Record.JSON["eventData"].(map[string]any)["media"].(map[string]any)
	assert.Equal(t, true, media["autoDownloaded"])
	assert.NotContains(t, out.Record.JSON, "media")
}

func TestMediaFailureStillEmits(t *testing.T) {
	opts := triggerx.DefaultOptions()
	opts.AutoDownloadMedia = true
	failure := wsapi.Registry.NewWithMessage(wsapi.ErrMediaDownloadFailed, "connection refused").WithCause(errors.New("dial tcp"))
	tr := newTranslator(t, opts, downloaderFunc(func(ctx context.Context, id string) (*flowx.Binary, error) {
		return nil, failure
	}))

	out := deliver(tr, mediaMessage)

	require.Equal(t, triggerx.KindEmit, out.Kind)
	assert.Nil(t, out.Record.Binary)
	media := out.Record.JSON["media"].(map[string]any)
	assert.Equal(t, "Failed to download media: connection refused", media["downloadError"])
	assert.NotContains(t, media, "autoDownloaded")
}

func TestMediaEnrichOnlyForMediaMessages(t *testing.T) {
	opts := triggerx.DefaultOptions()
	opts.AutoDownloadMedia = true
	tr := newTranslator(t, opts, downloaderFunc(func(ctx context.Context, id string) (*flowx.Binary, error) {
		t.Fatalf("unexpected download of %s", id)
		return nil, nil
	}))

	for _, body := range []string{
		textMessage,
		`{"eventType":"message","eventData":{"type":"media","media":{"id":""}}}`,
		`{"eventType":"message","eventData":{"type":"media"}}`,
	} {
		out := deliver(tr, body)
		assert.Equal(t, triggerx.KindEmit, out.Kind)
		assert.Nil(t, out.Record.Binary)
	}
}

func TestEmitPublishesToBus(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()

	var got eventx.Event
	require.NoError(t, bus.Subscribe(ctx, "wsapi.message", func(ctx context.Context, e eventx.Event) error {
		got = e
		return nil
	}))
	tr := newTranslator(t, triggerx.DefaultOptions(), nil, triggerx.WithBus(bus))

	out := deliver(tr, textMessage)

	require.NotNil(t, got)
	assert.Equal(t, out.Body["eventId"], got.ID())
	assert.Equal(t, "ins-1", got.Metadata()["instanceId"])
	record := got.Payload().(flowx.Record)
	assert.Equal(t, "hi", record.JSON["text"])
}

func TestBusFailureDoesNotChangeOutcome(t *testing.T) {
	ctx := context.Background()
	bus := eventx.NewMemoryBus()
	_ = bus.Subscribe(ctx, eventx.Wildcard, func(ctx context.Context, e eventx.Event) error { return errors.New("down") })
	tr := newTranslator(t, triggerx.DefaultOptions(), nil, triggerx.WithBus(bus))

	out := deliver(tr, textMessage)

	assert.Equal(t, triggerx.KindEmit, out.Kind)
	assert.Equal(t, http.StatusOK, out.Status)
}

func TestOptionsValidation(t *testing.T) {
	_, err := triggerx.NewTranslator(triggerx.Options{Operation: triggerx.GroupCall, Events: []string{"message"}}, nil)
	assert.True(t, errx.IsCode(err, triggerx.ErrInvalidOptions))

	_, err = triggerx.NewTranslator(triggerx.Options{Operation: "everything"}, nil)
	assert.True(t, errx.IsCode(err, validatex.ErrInvalid))

	_, err = triggerx.NewTranslator(triggerx.Options{Auth: triggerx.Auth{Enabled: true}}, nil)
	assert.True(t, errx.IsCode(err, validatex.ErrInvalid))

	_, err = triggerx.NewTranslator(triggerx.Options{AutoDownloadMedia: true}, nil)
	assert.True(t, errx.IsCode(err, triggerx.ErrInvalidOptions))

	tr, err := triggerx.NewTranslator(triggerx.Options{Operation: triggerx.GroupSession}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"logged_in"}, tr.Options().Events)
	assert.Equal(t, triggerx.DefaultAuthHeader, tr.Options().Auth.HeaderName)
}

func TestEventTypes(t *testing.T) {
	assert.Len(t, triggerx.EventTypes(triggerx.GroupAll), 20)
	assert.Equal(t, []string{"contact", "group"}, triggerx.EventTypes(triggerx.GroupContact))
	assert.Equal(t, []string{"all", "call", "chat", "contact", "message", "session", "user"}, triggerx.Groups())
}

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/triggerx"
)

const delivery = `{"instanceId":"ins-1","eventType":"message","eventData":{"id":"M1","text":"hi","type":"text"}}`

func newTestHandler(t *testing.T) Handler {
	t.Helper()
	opts := triggerx.DefaultOptions()
	opts.Auth = triggerx.Auth{Enabled: true, HeaderName: "X-Secret", HeaderValue: "s3cret"}
	tr, err := triggerx.NewTranslator(opts, nil)
	require.NoError(t, err)
	return NewHandler(tr)
}

func decodeBody(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return body
}

func TestHandlerEmits(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h(context.Background(), events.APIGatewayProxyRequest{
		Headers: map[string]string{"x-secret": "s3cret"},
		Body:    delivery,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["received"])
	assert.NotEmpty(t, body["eventId"])
}

func TestHandlerDecodesBase64Body(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h(context.Background(), events.APIGatewayProxyRequest{
		MultiValueHeaders: map[string][]string{"X-Secret": {"s3cret"}},
		Body:              base64.StdEncoding.EncodeToString([]byte(delivery)),
		IsBase64Encoded:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = h(context.Background(), events.APIGatewayProxyRequest{
		Headers:         map[string]string{"X-Secret": "s3cret"},
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerRejects(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h(context.Background(), events.APIGatewayProxyRequest{Body: delivery})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decodeBody(t, resp)["error"])
}

func TestProxyHeadersPreferMultiValue(t *testing.T) {
	headers := proxyHeaders(events.APIGatewayProxyRequest{
		Headers:           map[string]string{"X-A": "single", "X-B": "b"},
		MultiValueHeaders: map[string][]string{"X-A": {"one", "two"}},
	})

	assert.Equal(t, []string{"one", "two"}, headers.Values("X-A"))
	assert.Equal(t, "b", headers.Get("X-B"))
}

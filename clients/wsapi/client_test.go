package wsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/errx"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", APIKey: "key-1", InstanceID: "inst-1"})
}

func TestDefaults(t *testing.T) {
	c := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
}

func TestRequestHeadersAndBody(t *testing.T) {
	var got *http.Request
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	})

	raw, err := c.Post(context.Background(), "/messages/text", map[string]any{"to": "1@s.whatsapp.net", "text": "hi"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"msg-1"}`, string(raw))
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/messages/text", got.URL.Path)
	assert.Equal(t, "key-1", got.Header.Get("X-Api-Key"))
	assert.Equal(t, "inst-1", got.Header.Get("X-Instance-Id"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "hi", body["text"])
}

func TestEscapedPathIsSentAsIs(t *testing.T) {
	var rawPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	})

	raw, err := c.Put(context.Background(), "/chats/1234567890%40s.whatsapp.net/pin", map[string]any{"pinned": true})

	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.Equal(t, "/chats/1234567890%40s.whatsapp.net/pin", rawPath)
}

func TestRemoteErrors(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		code    errx.Code
		message string
	}{
		{http.StatusUnauthorized, `{"message":"invalid api key"}`, ErrUnauthorized, "invalid api key"},
		{http.StatusForbidden, `{"error":"forbidden"}`, ErrUnauthorized, "forbidden"},
		{http.StatusNotFound, `chat not found`, ErrNotFound, "chat not found"},
		{http.StatusTooManyRequests, ``, ErrRateLimited, "Too Many Requests"},
		{http.StatusGatewayTimeout, `{}`, ErrTimeout, "{}"},
		{http.StatusServiceUnavailable, `down`, ErrUnavailable, "down"},
		{http.StatusBadRequest, `{"message":"bad to"}`, ErrRemote, "bad to"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Get(context.Background(), "/chats", nil)

			require.Error(t, err)
			assert.True(t, IsRemoteError(err))
			e, ok := errx.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, errx.TypeExternal, e.Type)
			assert.Equal(t, tt.message, e.Message)
			assert.Equal(t, tt.status, e.Details["statusCode"])
			assert.Equal(t, "GET", e.Details["method"])
			assert.Equal(t, "/chats", e.Details["path"])
			assert.Equal(t, tt.body, e.Details["response"])
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Get(context.Background(), "/session/status", nil)

	require.Error(t, err)
	assert.True(t, IsRemoteError(err))
	assert.Equal(t, 0, StatusCode(err))
}

func TestTestCredentials(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"isLoggedIn":true}`))
	})

	require.NoError(t, c.TestCredentials(context.Background()))
	assert.Equal(t, "/session/status", path)
}

func TestDownloadMedia(t *testing.T) {
	t.Run("headers", func(t *testing.T) {
		var query string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			w.Header().Set("Content-Disposition", `attachment; filename="photo.jpg"`)
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
		})

		bin, err := c.DownloadMedia(context.Background(), "m 1")

		require.NoError(t, err)
		assert.Equal(t, "id=m+1", query)
		assert.Equal(t, "photo.jpg", bin.FileName)
		assert.Equal(t, "image/jpeg", bin.MimeType)
		assert.Equal(t, 3, bin.FileSize)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, bin.Data)
	})

	t.Run("fallbacks", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header()["Content-Type"] = nil
			_, _ = w.Write([]byte("x"))
		})

		bin, err := c.DownloadMedia(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, "media_abc", bin.FileName)
		assert.Equal(t, "application/octet-stream", bin.MimeType)
	})

	t.Run("failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"media expired"}`))
		})

		_, err := c.DownloadMedia(context.Background(), "abc")

		require.Error(t, err)
		assert.True(t, errx.IsCode(err, ErrMediaDownloadFailed))
		assert.Equal(t, "media expired", errx.MessageOf(err))
		assert.ErrorIs(t, err, &errx.Error{Code: ErrNotFound}, "remote cause stays in the chain")
	})
}

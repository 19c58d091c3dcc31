package appx

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/cachex"
	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/triggerx"
	"github.com/Abraxas-365/wsapix/validatex"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("WSAPIX_GATEWAY_APIKEY", "key-1")
	t.Setenv("WSAPIX_GATEWAY_INSTANCEID", "ins-1")
	t.Setenv("WSAPIX_TRIGGER_EVENTS", "message,message_read")

	s, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "https://api.wsapi.chat", s.Gateway.BaseURL)
	assert.Equal(t, "key-1", s.Gateway.APIKey)
	assert.Equal(t, 30*time.Second, s.Gateway.Timeout)
	assert.Equal(t, cachex.DriverMemory, s.Cache.Driver)
	assert.Equal(t, 300, s.Cache.DefaultTTL)
	assert.Equal(t, "/webhook/wsapi", s.Server.WebhookPath)
	assert.True(t, s.Trigger.ParseEventData)
	assert.Equal(t, triggerx.DefaultAuthHeader, s.Trigger.Auth.HeaderName)
	assert.Equal(t, []string{"message", "message_read"}, s.Trigger.Options().Events)
}

func TestLoadFileAndDotEnv(t *testing.T) {
	file := writeFile(t, "wsapix.yaml", `
gateway:
  baseUrl: https://gw.example
  apiKey: from-file
  instanceId: ins-file
  timeout: 5s
trigger:
  operation: session
  events: [logged_in, logged_out]
  auth:
    enabled: true
    headerValue: s3cret
`)
	env := writeFile(t, ".env", "WSAPIX_GATEWAY_APIKEY=from-dotenv\n")

	s, err := Load(LoadOptions{ConfigFile: file, EnvFile: env})
	require.NoError(t, err)

	assert.Equal(t, "https://gw.example", s.Gateway.BaseURL)
	assert.Equal(t, "from-dotenv", s.Gateway.APIKey)
	assert.Equal(t, 5*time.Second, s.Gateway.Timeout)
	assert.Equal(t, "session", s.Trigger.Operation)
	assert.True(t, s.Trigger.Auth.Enabled)
	assert.Equal(t, "s3cret", s.Trigger.Auth.HeaderValue)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, validatex.ErrInvalid))

	t.Setenv("WSAPIX_GATEWAY_APIKEY", "k")
	t.Setenv("WSAPIX_GATEWAY_INSTANCEID", "i")
	t.Setenv("WSAPIX_CACHE_DRIVER", "redis")
	_, err = Load(LoadOptions{})
	require.Error(t, err)
	e, _ := errx.As(err)
	assert.Equal(t, "required_if=Driver redis", e.Details["cache.redisUrl"])

	t.Setenv("WSAPIX_CACHE_DRIVER", "memory")
	t.Setenv("WSAPIX_TRIGGER_OPERATION", "call")
	t.Setenv("WSAPIX_TRIGGER_EVENTS", "message")
	_, err = Load(LoadOptions{})
	assert.True(t, errx.IsCode(err, triggerx.ErrInvalidOptions))
}

func TestNewWiresRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("WSAPIX_GATEWAY_APIKEY", "k")
	t.Setenv("WSAPIX_GATEWAY_INSTANCEID", "i")
	t.Setenv("WSAPIX_CACHE_DRIVER", "redis")
	t.Setenv("WSAPIX_CACHE_REDISURL", "redis://"+mr.Addr())

	s, err := Load(LoadOptions{})
	require.NoError(t, err)

	app, err := New(context.Background(), s)
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, &cachex.RedisStore{}, app.Store)
	assert.Equal(t, "i", app.Client.InstanceID())
	assert.NotEmpty(t, app.Router.Catalog())
	assert.Equal(t, []string{"message"}, app.Translator.Options().Events)
}

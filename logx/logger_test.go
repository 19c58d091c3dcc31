package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(format OutputFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := New()
	l.SetOutput(buf)
	l.SetFormat(format)
	l.SetColored(false)
	l.SetShowCaller(false)
	l.now = func() time.Time { return time.Date(2025, 6, 8, 18, 57, 52, 0, time.UTC) }
	return l, buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)
	l.SetLevel(WarnLevel)

	l.Info("hidden")
	l.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]: shown 1")
}

func TestOffLevelSilencesEverything(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)
	l.SetLevel(OffLevel)

	l.Error("nothing")

	assert.Empty(t, buf.String())
}

func TestConsoleFields(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)

	l.With("instanceId", "abc").With("note", "two words").Info("emitted")

	assert.Equal(t, "[2025-06-08 18:57:52] [INFO]: emitted instanceId=abc note=\"two words\"\n", buf.String())
}

func TestWithDoesNotLeakIntoParent(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)

	_ = l.With("child", true)
	l.Info("parent")

	assert.NotContains(t, buf.String(), "child")
}

func TestJSONFormat(t *testing.T) {
	l, buf := newTestLogger(FormatJSON)

	l.With("err", errors.New("boom")).Error("failed %s", "call")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "failed call", entry["message"])
	assert.Equal(t, "boom", entry["err"])
}

func TestCloudWatchFormatIsSingleLine(t *testing.T) {
	l, buf := newTestLogger(FormatCloudWatch)

	l.With("payload", map[string]any{"a": 1}).Info("done")

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")
	assert.True(t, strings.HasPrefix(out, "[2025-06-08T18:57:52.000Z] [INFO]: done"))
	assert.Contains(t, out, `payload={"a":1}`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" warning ")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatCloudWatch, ParseFormat("cloudwatch"))
	assert.Equal(t, FormatConsole, ParseFormat("anything"))
}

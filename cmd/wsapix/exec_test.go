package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/fsx"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"pinned=true", "note=a=b"}, "")
	require.NoError(t, err)
	assert.Equal(t, []flowx.Params{flowx.MapParams{"pinned": "true", "note": "a=b"}}, items)

	items, err = parseItems([]string{"to=1@s.whatsapp.net"}, `[{"message":"a"},{"message":"b"}]`)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].StringOr("message", ""))
	assert.Equal(t, "1@s.whatsapp.net", items[1].StringOr("to", ""))

	items, err = parseItems(nil, `{"chatId":"x"}`)
	require.NoError(t, err)
	assert.Equal(t, []flowx.Params{flowx.MapParams{"chatId": "x"}}, items)

	_, err = parseItems([]string{"novalue"}, "")
	assert.True(t, errx.IsCode(err, flowx.ErrInvalidParameter))

	_, err = parseItems(nil, `{"broken"`)
	assert.True(t, errx.IsCode(err, flowx.ErrInvalidParameter))
}

func TestWriteBinaries(t *testing.T) {
	dir := t.TempDir()
	records := []flowx.Record{
		{JSON: map[string]any{"success": true}, Binary: flowx.NewBinary([]byte("png"), "../qr.png", "image/png")},
		{JSON: map[string]any{"success": true}},
	}

	require.NoError(t, writeBinaries(context.Background(), fsx.NewLocal(dir), records))

	data, err := os.ReadFile(filepath.Join(dir, "qr.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, "qr.png", records[0].JSON["savedTo"])
	assert.Nil(t, records[0].Binary.Data)
}

func TestCatalogCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog", "--resource", "users"})
	t.Cleanup(func() { catalogResource = "" })

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "RESOURCE")
	assert.Contains(t, out.String(), "/users/{phone}")
	assert.NotContains(t, out.String(), "pinChat")
}

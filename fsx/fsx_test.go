package fsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/errx"
)

func TestLocalWriteFile(t *testing.T) {
	ctx := context.Background()
	l := NewLocal(t.TempDir())

	require.NoError(t, l.WriteFile(ctx, l.Join("media", "qr.png"), []byte("png")))

	data, err := os.ReadFile(filepath.Join(l.Root(), "media", "qr.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	ok, err := l.Exists(ctx, "media/qr.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Exists(ctx, "absent.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStaysInsideRoot(t *testing.T) {
	l := NewLocal(t.TempDir())

	err := l.WriteFile(context.Background(), "../escape.txt", []byte("x"))

	assert.True(t, errx.IsCode(err, ErrOutsideRoot))
}

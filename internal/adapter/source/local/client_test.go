package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/adapter"
)

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zh-cn.json"), []byte(`{}`), 0644))

	c := NewClient(dir, adapter.NullLogger())

	data, err := c.Fetch(context.Background(), "zh-cn.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	_, err = c.Fetch(context.Background(), "missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(t.TempDir(), adapter.NullLogger()).Fetch(ctx, "zh-cn.json")
	assert.ErrorIs(t, err, context.Canceled)
}

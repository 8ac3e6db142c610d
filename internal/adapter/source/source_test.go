package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/adapter/source/local"
	"github.com/mmcdole/godex/internal/adapter/source/web"
)

func TestNewSource(t *testing.T) {
	src, err := NewSource("https://example.com/js", adapter.NullLogger())
	require.NoError(t, err)
	assert.IsType(t, &web.Client{}, src)

	src, err = NewSource("HTTP://example.com/js", adapter.NullLogger())
	require.NoError(t, err)
	assert.IsType(t, &web.Client{}, src)

	src, err = NewSource("./js", adapter.NullLogger())
	require.NoError(t, err)
	assert.IsType(t, &local.Client{}, src)

	_, err = NewSource("", adapter.NullLogger())
	assert.Error(t, err)
}

func TestNewSourceFromConfig(t *testing.T) {
	src, err := NewSourceFromConfig(adapter.DefaultConfig(), adapter.NullLogger())
	require.NoError(t, err)
	assert.IsType(t, &local.Client{}, src)
}

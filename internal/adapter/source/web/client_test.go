package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/domain"
)

func TestFetch_SendsNoCacheHeaders(t *testing.T) {
	var gotPath, gotCache, gotPragma string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCache = r.Header.Get("Cache-Control")
		gotPragma = r.Header.Get("Pragma")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"fmt"}]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/static/js", adapter.NullLogger())
	require.NoError(t, err)

	body, err := c.Fetch(context.Background(), "go1.25-full.json")
	require.NoError(t, err)

	assert.Equal(t, `[{"name":"fmt"}]`, string(body))
	assert.Equal(t, "/static/js/go1.25-full.json", gotPath)
	assert.Equal(t, "no-cache", gotCache)
	assert.Equal(t, "no-cache", gotPragma)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, adapter.NullLogger())
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "zh-cn.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, adapter.NullLogger())
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "zh-cn.json")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnexpectedStatus))
}

func TestDescribe(t *testing.T) {
	c, err := NewClient("https://example.com/docs/js/", adapter.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs/js/zh-cn.json", c.Describe("zh-cn.json"))

	c, err = NewClient("https://example.com", adapter.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/zh-cn.json", c.Describe("zh-cn.json"))
}

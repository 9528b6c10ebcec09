package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-agent", 2*time.Second, newTestLogger(t))
}

func TestClient_CheckUsername_Exists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/kiwi_foodie/about.json", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"name":"kiwi_foodie"}}`))
	})

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.True(t, result.Exists)
	assert.Equal(t, "kiwi_foodie", result.Canonical)
	assert.False(t, result.CaseMismatch)
}

func TestClient_CheckUsername_CaseMismatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"name":"Kiwi_Foodie"}}`))
	})

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.True(t, result.Exists)
	assert.Equal(t, "Kiwi_Foodie", result.Canonical)
	assert.True(t, result.CaseMismatch)
}

func TestClient_CheckUsername_UnparseableBodyStillExists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>blocked</html>`))
	})

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.True(t, result.Exists)
	assert.Empty(t, result.Canonical)
}

func TestClient_CheckUsername_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result := c.CheckUsername(context.Background(), "nobody_here")

	assert.False(t, result.Exists)
	assert.Equal(t, "not_found", result.Reason)
}

func TestClient_CheckUsername_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.False(t, result.Exists)
	assert.Equal(t, "rate_limited", result.Error)
	assert.Equal(t, http.StatusTooManyRequests, result.Status)
}

func TestClient_CheckUsername_UnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.False(t, result.Exists)
	assert.Equal(t, "unexpected_status", result.Error)
	assert.Equal(t, http.StatusBadGateway, result.Status)
}

func TestClient_CheckUsername_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "test-agent", 50*time.Millisecond, newTestLogger(t))

	result := c.CheckUsername(context.Background(), "kiwi_foodie")

	assert.False(t, result.Exists)
	assert.Equal(t, "timeout", result.Error)
}

func TestClient_CheckUsername_TooLong(t *testing.T) {
	// No server: the length guard short-circuits before any request.
	c := NewClient("http://127.0.0.1:0", "test-agent", time.Second, newTestLogger(t))

	result := c.CheckUsername(context.Background(), strings.Repeat("a", 31))

	require.False(t, result.Exists)
	assert.Equal(t, "too_long", result.Reason)
}

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *EverhourClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewEverhourClient(config.EverhourConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
}

func TestGetUser_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/ev:1001", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"ev:1001","name":"Alice","email":"alice@example.com"}`))
	})

	user, err := c.GetUser(context.Background(), "ev:1001")
	require.NoError(t, err)
	assert.Equal(t, "ev:1001", user.ID)
	assert.Equal(t, "Alice", user.Name)
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@example.com", *user.Email)
}

func TestGetUser_MissingOptionalFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Bob"}`))
	})

	user, err := c.GetUser(context.Background(), "ev:2002")
	require.NoError(t, err)
	// レスポンスに id が無い場合はリクエストの id を引き継ぐ
	assert.Equal(t, "ev:2002", user.ID)
	assert.Nil(t, user.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.GetUser(context.Background(), "ev:1001")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetUser_TransportError(t *testing.T) {
	c := NewEverhourClient(config.EverhourConfig{
		BaseURL: "http://127.0.0.1:1", // 接続不能なポート
		APIKey:  "test-key",
	})

	_, err := c.GetUser(context.Background(), "ev:1001")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestHealthy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	// 認証エラーでも到達できていれば healthy
	assert.NoError(t, c.Healthy(context.Background()))
}

func TestHealthy_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Error(t, c.Healthy(context.Background()))
}

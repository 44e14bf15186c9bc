package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleReadyz(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = up.Close() }()
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer func() { _ = down.Close() }()

	tests := []struct {
		name       string
		cache      *redis.Client
		asynqRedis *redis.Client
		wantCode   int
		wantBody   string
	}{
		{"all ready", up, up, http.StatusOK, `"ready"`},
		{"cache down", down, up, http.StatusServiceUnavailable, "Cache not ready"},
		{"asynq redis down", up, down, http.StatusServiceUnavailable, "Asynq Redis not ready"},
		{"nothing configured", nil, nil, http.StatusOK, `"ready"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()
			HandleReadyz(tc.cache, tc.asynqRedis).ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

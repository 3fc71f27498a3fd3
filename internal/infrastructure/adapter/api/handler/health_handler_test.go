package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthy(context.Context) error { return nil }

func serveHealth(t *testing.T, h *HealthHandler) (int, dto.HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthHandler(t *testing.T) {
	t.Run("All checks pass", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{
			"database": pingFunc(healthy),
			"index":    pingFunc(healthy),
		}, func() database.ConnectionPoolMetrics {
			return database.ConnectionPoolMetrics{OpenConnections: 3, InUse: 1, IdleConnections: 2}
		}, logger.NewNopLogger())

		code, resp := serveHealth(t, h)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"database": "ok", "index": "ok"}, resp.Checks)
		assert.Equal(t, dto.DatabasePoolStats{OpenConnections: 3, InUse: 1, Idle: 2}, resp.Database)
	})

	t.Run("Failing check makes the service unavailable", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{
			"database": pingFunc(healthy),
			"index": pingFunc(func(context.Context) error {
				return errors.New("connection refused")
			}),
		}, nil, logger.NewNopLogger())

		code, resp := serveHealth(t, h)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["index"])
		assert.Equal(t, "ok", resp.Checks["database"])
	})

	t.Run("Checks run under a deadline", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{
			"database": pingFunc(func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return nil
			}),
		}, nil, logger.NewNopLogger())

		code, _ := serveHealth(t, h)

		assert.Equal(t, http.StatusOK, code)
	})
}

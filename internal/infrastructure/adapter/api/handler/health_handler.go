package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
)

// Pinger is a dependency whose reachability is part of the service health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service dependencies are reachable
type HealthHandler struct {
	checks      map[string]Pinger
	poolMetrics func() database.ConnectionPoolMetrics
	logger      coreport.Logger
}

// NewHealthHandler creates a health handler. poolMetrics may be nil.
func NewHealthHandler(checks map[string]Pinger, poolMetrics func() database.ConnectionPoolMetrics, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		checks:      checks,
		poolMetrics: poolMetrics,
		logger:      logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := dto.HealthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{
				"check": name,
				"error": err.Error(),
			})
			resp.Status = "unavailable"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}

	if h.poolMetrics != nil {
		m := h.poolMetrics()
		resp.Database = dto.DatabasePoolStats{
			OpenConnections: m.OpenConnections,
			InUse:           m.InUse,
			Idle:            m.IdleConnections,
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

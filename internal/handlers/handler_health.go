package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbPingTimeout = 2 * time.Second

// healthHandler exposes liveness probes for the process and its database.
type healthHandler struct {
	pool *pgxpool.Pool
}

// registerHealthRoutes registers the public health probes.
func registerHealthRoutes(rg *gin.Engine, pool *pgxpool.Pool) {
	h := &healthHandler{pool: pool}

	health := rg.Group("/health")
	{
		health.GET("/backend", h.backendHealth)
		health.GET("/db", h.dbHealth)
	}
}

// backendHealth godoc
// @Summary Backend liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/backend [get]
func (h *healthHandler) backendHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// dbHealth godoc
// @Summary Database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/db [get]
func (h *healthHandler) dbHealth(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "detail": "database not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "detail": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

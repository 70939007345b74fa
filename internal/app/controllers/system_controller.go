package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// SystemController exposes health and connectivity probes
type SystemController struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSystemController creates a new SystemController
func NewSystemController(pool *pgxpool.Pool, logger zerolog.Logger) *SystemController {
	return &SystemController{
		pool:   pool,
		logger: logger,
	}
}

// TestDB runs a trivial query to confirm database connectivity
func (c *SystemController) TestDB(ctx *gin.Context) {
	var result int
	if err := c.pool.QueryRow(ctx.Request.Context(), "SELECT 1").Scan(&result); err != nil {
		c.logger.Error().Err(err).Msg("Database connectivity check failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Database connected successfully",
		"result":  result,
	})
}

// Health reports process liveness
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

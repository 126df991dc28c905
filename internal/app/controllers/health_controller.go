package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// Pinger reports whether the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service health
type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health checks the database connection
// @Summary Health check
// @Tags salud
// @Produce json
// @Success 200 {object} dto.Envelope "Service healthy"
// @Failure 503 {object} dto.Envelope "Database unreachable"
// @Router /salud [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.FromContext(ctx.Request.Context()).Error().Err(err).Msg("Health check failed")
		middleware.RespondError(ctx, http.StatusServiceUnavailable, "Base de datos no disponible")
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, gin.H{"estado": "ok"})
}

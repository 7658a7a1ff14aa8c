package handler

import (
	"context"
	"time"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/dto"
	"quiz-brief/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when no store is configured.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health reports 200 when the store answers a ping or none is configured,
// 503 otherwise. It is mounted outside /api and not part of the API docs.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(dto.HealthResponse{Status: "ok", Store: "disabled"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: store unreachable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Store: "unreachable"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Store: "ok"})
}

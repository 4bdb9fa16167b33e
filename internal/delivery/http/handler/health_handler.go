package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"crewplan/internal/database"
	"crewplan/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{
		"status":   status,
		"database": dbStatus,
	})
}

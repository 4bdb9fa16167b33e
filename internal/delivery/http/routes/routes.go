package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"crewplan/internal/config"
	"crewplan/internal/database"
	"crewplan/internal/delivery/http/handler"
	"crewplan/internal/infrastructure/cache"
	"crewplan/internal/ws"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	store  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, store *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		store:  store,
		hub:    hub,
		logger: logger,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

// registerWS mounts the allocation event feed outside the bearer guard;
// browser websocket clients cannot set an Authorization header.
func (r *Registry) registerWS(app *fiber.App) {
	wsHandler := ws.NewHandler(r.hub, r.logger)
	app.Get("/ws/allocations", wsHandler.HandleAllocationsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.store)
}

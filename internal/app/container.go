package app

import (
	"context"
	"log"
	"time"

	"crewplan/internal/config"
	"crewplan/internal/database"
	dbpostgres "crewplan/internal/database/postgres"
	"crewplan/internal/infrastructure/cache"
	"crewplan/internal/ws"
)

// Container holds the long-lived infrastructure: the database pool, the
// Redis cache, and the websocket hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  store,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

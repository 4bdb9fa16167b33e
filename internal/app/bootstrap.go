package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"crewplan/internal/config"
	"crewplan/internal/database/migration"
	"crewplan/internal/database/seeder"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/delivery/http/routes"
	"crewplan/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger).Register(f)

	return &App{Fiber: f, Hub: c.Hub}
}

// Bootstrap connects the infrastructure, applies migrations and seeds from
// migrationsFS, starts the websocket hub, and returns the app plus a cleanup
// closure.
func Bootstrap(cfg config.Config, logger *log.Logger, migrationsFS fs.FS) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := (migration.Runner{FS: migrationsFS}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := seeder.RunAll(ctx, c.DB, logger, seeder.Defaults()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run seeders: %w", err)
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

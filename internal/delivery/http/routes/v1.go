package routes

import (
	"github.com/gofiber/fiber/v3"

	"crewplan/internal/config"
	"crewplan/internal/database"
	v1 "crewplan/internal/delivery/http/routes/v1"
	"crewplan/internal/infrastructure/cache"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, store *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, store)
}

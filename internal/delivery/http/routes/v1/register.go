package v1

import (
	"github.com/gofiber/fiber/v3"

	"crewplan/internal/config"
	"crewplan/internal/database"
	"crewplan/internal/delivery/http/handler"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/allocation"
	"crewplan/internal/infrastructure/cache"
	"crewplan/internal/pkg/jwt"
	"crewplan/internal/repository"
	"crewplan/internal/usecase"
	"crewplan/internal/ws"
)

// Register wires repositories, usecases, and handlers under /api/v1. All
// groups except /auth sit behind the bearer middleware.
func Register(r fiber.Router, cfg config.Config, db database.DB, store *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	personnelRepo := repository.NewPostgresPersonnelRepository(db)
	personnelSkillRepo := repository.NewPostgresPersonnelSkillRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	requiredSkillRepo := repository.NewPostgresRequiredSkillRepository(db)
	availabilityRepo := repository.NewPostgresAvailabilityRepository(db)
	allocationRepo := repository.NewPostgresAllocationRepository(db)

	invalidate := store.InvalidateCandidates
	notify := func(a allocation.Allocation) {
		ws.NotifyAllocationAccepted(a.ID, a.ProjectID, a.PersonnelID, a.Percentage, a.Range.Start, a.Range.End)
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	personnelUC := usecase.NewPersonnelUsecase(personnelRepo, personnelSkillRepo, skillRepo, invalidate)
	projectUC := usecase.NewProjectUsecase(projectRepo, requiredSkillRepo, skillRepo, invalidate)
	availabilityUC := usecase.NewAvailabilityUsecase(personnelRepo, availabilityRepo, invalidate)
	matchingUC := usecase.NewMatchingUsecase(projectRepo, requiredSkillRepo, personnelRepo, personnelSkillRepo, availabilityRepo, store)
	allocationUC := usecase.NewAllocationUsecase(db, projectRepo, personnelRepo, allocationRepo, invalidate, notify)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	personnelHandler := handler.NewPersonnelHandler(personnelUC)
	projectHandler := handler.NewProjectHandler(projectUC)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	allocationHandler := handler.NewAllocationHandler(allocationUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	skillsGroup := protected.Group("/skills")
	skillHandler.RegisterRoutes(skillsGroup)

	personnelGroup := protected.Group("/personnel")
	personnelHandler.RegisterRoutes(personnelGroup)
	availabilityHandler.RegisterRoutes(personnelGroup)
	allocationHandler.RegisterPersonnelRoutes(personnelGroup)

	projectsGroup := protected.Group("/projects")
	projectHandler.RegisterRoutes(projectsGroup)
	matchHandler.RegisterRoutes(projectsGroup)

	allocationsGroup := protected.Group("/allocations")
	allocationHandler.RegisterRoutes(allocationsGroup)
}

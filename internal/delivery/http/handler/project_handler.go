package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/scale"
	"crewplan/internal/pkg/response"
	"crewplan/internal/repository"
	"crewplan/internal/usecase"
)

const dateLayout = "2006-01-02"

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:project_id", h.Get)
	r.Post("/:project_id/required-skills", h.SetRequiredSkill)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	out := make([]dto.ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProjectResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	detail, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	out := dto.ProjectDetailResponse{
		ProjectResponse: toProjectResponse(detail.Project),
		RequiredSkills:  make([]dto.RequiredSkillResponse, 0, len(detail.RequiredSkills)),
	}
	for _, rs := range detail.RequiredSkills {
		out.RequiredSkills = append(out.RequiredSkills, dto.RequiredSkillResponse{
			SkillID:            rs.SkillID,
			SkillName:          rs.SkillName,
			MinimumProficiency: rs.MinimumProficiency.String(),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid end_date", nil, err)
	}

	p, err := h.uc.Create(c.Context(), usecase.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toProjectResponse(p))
}

func (h *ProjectHandler) SetRequiredSkill(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.SetRequiredSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.SetRequiredSkill(c.Context(), id, usecase.RequiredSkillInput{
		SkillID:            req.SkillID,
		MinimumProficiency: scale.ParseProficiency(req.MinimumProficiency),
	})
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toProjectResponse(p repository.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
	}
}

func mapProjectUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

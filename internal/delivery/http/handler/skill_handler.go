package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/pkg/response"
	"crewplan/internal/usecase"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.CreateSkill(c.Context(), req.Name, req.Category)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Skill name required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/scale"
	"crewplan/internal/pkg/response"
	"crewplan/internal/repository"
	"crewplan/internal/usecase"
)

type PersonnelHandler struct {
	uc usecase.PersonnelUsecase
}

func NewPersonnelHandler(uc usecase.PersonnelUsecase) *PersonnelHandler {
	return &PersonnelHandler{uc: uc}
}

func (h *PersonnelHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:personnel_id", h.Get)
	r.Post("/:personnel_id/skills", h.AssignSkill)
}

func (h *PersonnelHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapPersonnelUsecaseError(err)
	}

	out := make([]dto.PersonnelResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPersonnelResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PersonnelHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	detail, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapPersonnelUsecaseError(err)
	}

	out := dto.PersonnelDetailResponse{
		PersonnelResponse: toPersonnelResponse(detail.Personnel),
		Skills:            make([]dto.PersonnelSkillResponse, 0, len(detail.Skills)),
	}
	for _, s := range detail.Skills {
		out.Skills = append(out.Skills, dto.PersonnelSkillResponse{
			SkillID:         s.SkillID,
			SkillName:       s.SkillName,
			Proficiency:     s.ProficiencyLevel.String(),
			YearsExperience: s.YearsExperience,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PersonnelHandler) Create(c fiber.Ctx) error {
	var req dto.CreatePersonnelRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Create(c.Context(), usecase.PersonnelInput{
		Name:       req.Name,
		Email:      req.Email,
		Experience: scale.ParseExperience(req.Experience),
	})
	if err != nil {
		return mapPersonnelUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toPersonnelResponse(p))
}

func (h *PersonnelHandler) AssignSkill(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.AssignSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.AssignSkill(c.Context(), id, usecase.SkillAssignmentInput{
		SkillID:         req.SkillID,
		Proficiency:     scale.ParseProficiency(req.Proficiency),
		YearsExperience: req.YearsExperience,
	})
	if err != nil {
		return mapPersonnelUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toPersonnelResponse(p repository.Personnel) dto.PersonnelResponse {
	return dto.PersonnelResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Experience: p.Experience.String(),
	}
}

func mapPersonnelUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPersonnelNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Personnel not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

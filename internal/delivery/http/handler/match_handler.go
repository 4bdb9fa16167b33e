package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/scale"
	"crewplan/internal/pkg/response"
	"crewplan/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterRoutes mounts under the projects group.
func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:project_id/candidates", h.Candidates)
}

func (h *MatchHandler) Candidates(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	filters, appErr := parseCandidateFilters(c)
	if appErr != nil {
		return appErr
	}

	ranked, err := h.uc.RankCandidates(c.Context(), id, filters)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.RankedCandidatesResponse{
		ProjectID:      ranked.ProjectID,
		RequiredSkills: make([]dto.RequiredSkillResponse, 0, len(ranked.RequiredSkills)),
		Candidates:     make([]dto.CandidateMatchResponse, 0, len(ranked.Candidates)),
	}
	for _, rs := range ranked.RequiredSkills {
		out.RequiredSkills = append(out.RequiredSkills, dto.RequiredSkillResponse{
			SkillID:            rs.SkillID,
			SkillName:          rs.SkillName,
			MinimumProficiency: rs.MinimumLevel.String(),
		})
	}
	for _, cm := range ranked.Candidates {
		row := dto.CandidateMatchResponse{
			PersonnelID:  cm.PersonnelID,
			Name:         cm.Name,
			Experience:   cm.Experience.String(),
			MatchCount:   cm.MatchCount,
			MatchScore:   cm.MatchScore,
			Availability: cm.Availability,
			Outcomes:     make([]dto.SkillOutcomeResponse, 0, len(cm.Outcomes)),
		}
		for _, o := range cm.Outcomes {
			outcome := dto.SkillOutcomeResponse{
				SkillID:       o.SkillID,
				SkillName:     o.SkillName,
				RequiredLevel: o.RequiredLevel.String(),
				Held:          o.Held,
				Meets:         o.Meets,
			}
			if o.Held {
				outcome.ActualLevel = o.ActualLevel.String()
			}
			row.Outcomes = append(row.Outcomes, outcome)
		}
		out.Candidates = append(out.Candidates, row)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseCandidateFilters(c fiber.Ctx) (usecase.CandidateFilters, error) {
	var filters usecase.CandidateFilters

	if raw := c.Query("experience_level"); raw != "" {
		exp := scale.ParseExperience(raw)
		if !exp.Valid() {
			return filters, middleware.NewAppError(fiber.StatusBadRequest, "Invalid experience_level", nil, nil)
		}
		filters.Experience = &exp
	}
	if raw := c.Query("min_availability"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			return filters, middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_availability", nil, err)
		}
		filters.MinAvailability = &n
	}
	return filters, nil
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrNoRequiredSkills):
		return middleware.NewAppError(fiber.StatusBadRequest, "Project has no required skills", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

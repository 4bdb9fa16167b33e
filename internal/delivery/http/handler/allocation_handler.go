package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/allocation"
	"crewplan/internal/pkg/response"
	"crewplan/internal/usecase"
)

type AllocationHandler struct {
	uc usecase.AllocationUsecase
}

func NewAllocationHandler(uc usecase.AllocationUsecase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

func (h *AllocationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Propose)
}

// RegisterPersonnelRoutes mounts the per-personnel listing under the
// personnel group.
func (h *AllocationHandler) RegisterPersonnelRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:personnel_id/allocations", h.ListByPersonnel)
}

func (h *AllocationHandler) Propose(c fiber.Ctx) error {
	var req dto.CreateAllocationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Percentage == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "allocation_percentage required", nil, nil)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid end_date", nil, err)
	}

	a, err := h.uc.Propose(c.Context(), usecase.AllocationInput{
		ProjectID:   req.ProjectID,
		PersonnelID: req.PersonnelID,
		Percentage:  *req.Percentage,
		Start:       start,
		End:         end,
		Role:        req.Role,
	})
	if err != nil {
		return mapAllocationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toAllocationResponse(a))
}

func (h *AllocationHandler) ListByPersonnel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListByPersonnel(c.Context(), id)
	if err != nil {
		return mapAllocationUsecaseError(err)
	}

	out := make([]dto.AllocationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAllocationResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toAllocationResponse(a allocation.Allocation) dto.AllocationResponse {
	return dto.AllocationResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		PersonnelID: a.PersonnelID,
		Percentage:  a.Percentage,
		StartDate:   a.Range.Start.Format(dateLayout),
		EndDate:     a.Range.End.Format(dateLayout),
		Role:        a.Role,
	}
}

func mapAllocationUsecaseError(err error) error {
	var conflict *usecase.CapacityConflictError
	switch {
	case errors.As(err, &conflict):
		data := dto.CapacityConflictResponse{
			Total:     conflict.Total,
			Conflicts: make([]dto.AllocationResponse, 0, len(conflict.Conflicts)),
		}
		for _, a := range conflict.Conflicts {
			data.Conflicts = append(data.Conflicts, toAllocationResponse(a))
		}
		return middleware.NewAppError(fiber.StatusConflict, "Allocation exceeds available capacity", data, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrPersonnelNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Personnel not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"crewplan/internal/delivery/http/dto"
	"crewplan/internal/delivery/http/middleware"
	"crewplan/internal/domain/availability"
	"crewplan/internal/pkg/response"
	"crewplan/internal/usecase"
)

type AvailabilityHandler struct {
	uc usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(uc usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// RegisterRoutes mounts under the personnel group so the paths read
// /personnel/:personnel_id/availability.
func (h *AvailabilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:personnel_id/availability", h.ListPeriods)
	r.Post("/:personnel_id/availability", h.CreatePeriod)
	r.Put("/:personnel_id/availability/:period_id", h.UpdatePeriod)
	r.Get("/:personnel_id/availability/report", h.Report)
}

func (h *AvailabilityHandler) ListPeriods(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	periods, err := h.uc.ListPeriods(c.Context(), id)
	if err != nil {
		return mapAvailabilityUsecaseError(err)
	}

	out := make([]dto.AvailabilityPeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, toPeriodResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AvailabilityHandler) CreatePeriod(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, appErr := h.bindPeriodInput(c, id)
	if appErr != nil {
		return appErr
	}

	p, err := h.uc.CreatePeriod(c.Context(), in)
	if err != nil {
		return mapAvailabilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toPeriodResponse(p))
}

func (h *AvailabilityHandler) UpdatePeriod(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	periodID, err := uuid.Parse(c.Params("period_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, appErr := h.bindPeriodInput(c, id)
	if appErr != nil {
		return appErr
	}

	p, err := h.uc.UpdatePeriod(c.Context(), periodID, in)
	if err != nil {
		return mapAvailabilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toPeriodResponse(p))
}

func (h *AvailabilityHandler) Report(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personnel_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start", nil, err)
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid end", nil, err)
	}

	report, err := h.uc.Report(c.Context(), id, start, end)
	if err != nil {
		return mapAvailabilityUsecaseError(err)
	}

	out := dto.AvailabilityReportResponse{
		PersonnelID: report.PersonnelID,
		WindowStart: report.WindowStart.Format(dateLayout),
		WindowEnd:   report.WindowEnd.Format(dateLayout),
		Percentage:  report.Percentage,
		Periods:     make([]dto.AvailabilityPeriodResponse, 0, len(report.Periods)),
	}
	for _, p := range report.Periods {
		out.Periods = append(out.Periods, toPeriodResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AvailabilityHandler) bindPeriodInput(c fiber.Ctx, personnelID uuid.UUID) (usecase.PeriodInput, error) {
	var req dto.CreatePeriodRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.PeriodInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Percentage == nil {
		return usecase.PeriodInput{}, middleware.NewAppError(fiber.StatusBadRequest, "availability_percentage required", nil, nil)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return usecase.PeriodInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return usecase.PeriodInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid end_date", nil, err)
	}

	return usecase.PeriodInput{
		PersonnelID: personnelID,
		Start:       start,
		End:         end,
		Percentage:  *req.Percentage,
		Notes:       req.Notes,
	}, nil
}

func toPeriodResponse(p availability.Period) dto.AvailabilityPeriodResponse {
	return dto.AvailabilityPeriodResponse{
		ID:          p.ID,
		PersonnelID: p.PersonnelID,
		StartDate:   p.Range.Start.Format(dateLayout),
		EndDate:     p.Range.End.Format(dateLayout),
		Percentage:  p.Percentage,
		Notes:       p.Notes,
	}
}

func mapAvailabilityUsecaseError(err error) error {
	var overlap *usecase.PeriodOverlapError
	switch {
	case errors.As(err, &overlap):
		return middleware.NewAppError(
			fiber.StatusConflict,
			"Availability period overlaps an existing period",
			toPeriodResponse(overlap.Conflicting),
			err,
		)
	case errors.Is(err, usecase.ErrPersonnelNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Personnel not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

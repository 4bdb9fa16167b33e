package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/domain/availability"
	"crewplan/internal/domain/interval"
	"crewplan/internal/repository"
)

type PeriodInput struct {
	PersonnelID uuid.UUID
	Start       time.Time
	End         time.Time
	Percentage  int
	Notes       string
}

// AvailabilityReport is the weighted utilization of one personnel over a
// window, alongside the periods that informed it.
type AvailabilityReport struct {
	PersonnelID uuid.UUID             `json:"personnel_id"`
	WindowStart time.Time             `json:"window_start"`
	WindowEnd   time.Time             `json:"window_end"`
	Percentage  int                   `json:"percentage"`
	Periods     []availability.Period `json:"periods"`
}

type AvailabilityUsecase interface {
	Report(ctx context.Context, personnelID uuid.UUID, start, end time.Time) (AvailabilityReport, error)
	ListPeriods(ctx context.Context, personnelID uuid.UUID) ([]availability.Period, error)
	CreatePeriod(ctx context.Context, in PeriodInput) (availability.Period, error)
	UpdatePeriod(ctx context.Context, periodID uuid.UUID, in PeriodInput) (availability.Period, error)
}

type Availability struct {
	personnel  repository.PersonnelRepository
	periods    repository.AvailabilityRepository
	invalidate func(ctx context.Context)
}

// NewAvailabilityUsecase wires the repositories plus an optional cache
// invalidation hook fired after successful writes.
func NewAvailabilityUsecase(
	personnel repository.PersonnelRepository,
	periods repository.AvailabilityRepository,
	invalidate func(ctx context.Context),
) *Availability {
	return &Availability{personnel: personnel, periods: periods, invalidate: invalidate}
}

func (u *Availability) Report(ctx context.Context, personnelID uuid.UUID, start, end time.Time) (AvailabilityReport, error) {
	if personnelID == uuid.Nil {
		return AvailabilityReport{}, ErrPersonnelNotFound
	}
	window, err := interval.New(start, end)
	if err != nil {
		return AvailabilityReport{}, ErrInvalidInput
	}

	exists, err := u.personnel.ExistsByID(ctx, personnelID)
	if err != nil {
		return AvailabilityReport{}, ErrInternal
	}
	if !exists {
		return AvailabilityReport{}, ErrPersonnelNotFound
	}

	periods, err := u.periods.FindByPersonnelID(ctx, personnelID)
	if err != nil {
		return AvailabilityReport{}, ErrInternal
	}

	return AvailabilityReport{
		PersonnelID: personnelID,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Percentage:  availability.WeightedWindow(periods, window),
		Periods:     periods,
	}, nil
}

func (u *Availability) ListPeriods(ctx context.Context, personnelID uuid.UUID) ([]availability.Period, error) {
	if personnelID == uuid.Nil {
		return nil, ErrPersonnelNotFound
	}
	periods, err := u.periods.FindByPersonnelID(ctx, personnelID)
	if err != nil {
		return nil, ErrInternal
	}
	return periods, nil
}

func (u *Availability) CreatePeriod(ctx context.Context, in PeriodInput) (availability.Period, error) {
	p, err := u.validatePeriod(ctx, in, uuid.Nil)
	if err != nil {
		return availability.Period{}, err
	}

	p.ID = uuid.New()
	if err := u.periods.Create(ctx, p); err != nil {
		return availability.Period{}, ErrInternal
	}
	u.fireInvalidate(ctx)
	return p, nil
}

func (u *Availability) UpdatePeriod(ctx context.Context, periodID uuid.UUID, in PeriodInput) (availability.Period, error) {
	if periodID == uuid.Nil {
		return availability.Period{}, ErrInvalidInput
	}
	p, err := u.validatePeriod(ctx, in, periodID)
	if err != nil {
		return availability.Period{}, err
	}

	p.ID = periodID
	ok, err := u.periods.Update(ctx, p)
	if err != nil {
		return availability.Period{}, ErrInternal
	}
	if !ok {
		return availability.Period{}, ErrInvalidInput
	}
	u.fireInvalidate(ctx)
	return p, nil
}

// validatePeriod checks bounds and the no-overlap invariant; excludeID skips
// the record being updated.
func (u *Availability) validatePeriod(ctx context.Context, in PeriodInput, excludeID uuid.UUID) (availability.Period, error) {
	if in.PersonnelID == uuid.Nil {
		return availability.Period{}, ErrPersonnelNotFound
	}
	if in.Percentage < 0 || in.Percentage > 100 {
		return availability.Period{}, ErrInvalidInput
	}
	rng, err := interval.New(in.Start, in.End)
	if err != nil {
		return availability.Period{}, ErrInvalidInput
	}

	exists, err := u.personnel.ExistsByID(ctx, in.PersonnelID)
	if err != nil {
		return availability.Period{}, ErrInternal
	}
	if !exists {
		return availability.Period{}, ErrPersonnelNotFound
	}

	existing, err := u.periods.FindByPersonnelID(ctx, in.PersonnelID)
	if err != nil {
		return availability.Period{}, ErrInternal
	}
	if conflict, found := availability.FindOverlap(existing, rng, excludeID); found {
		return availability.Period{}, &PeriodOverlapError{Conflicting: conflict}
	}

	return availability.Period{
		PersonnelID: in.PersonnelID,
		Range:       rng,
		Percentage:  in.Percentage,
		Notes:       in.Notes,
	}, nil
}

func (u *Availability) fireInvalidate(ctx context.Context) {
	if u.invalidate != nil {
		u.invalidate(ctx)
	}
}

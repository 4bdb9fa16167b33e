package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"crewplan/internal/domain/availability"
)

func TestAvailabilityUsecase_CreatePeriod_RejectsOverlap(t *testing.T) {
	person := uuid.New()
	existing := availability.Period{
		ID:          uuid.New(),
		PersonnelID: person,
		Range:       testRange(t, "2025-06-01", "2025-06-30"),
		Percentage:  50,
	}

	repo := &mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{
		person: {existing},
	}}
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: true}, repo, nil)

	_, err := uc.CreatePeriod(context.Background(), PeriodInput{
		PersonnelID: person,
		Start:       date(t, "2025-06-15"),
		End:         date(t, "2025-07-15"),
		Percentage:  80,
	})

	var overlap *PeriodOverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected PeriodOverlapError, got %v", err)
	}
	if overlap.Conflicting.ID != existing.ID {
		t.Fatalf("expected the existing period reported")
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no write on rejection")
	}
}

func TestAvailabilityUsecase_CreatePeriod_AdjacentAllowed(t *testing.T) {
	person := uuid.New()
	repo := &mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{
		person: {{
			ID:          uuid.New(),
			PersonnelID: person,
			Range:       testRange(t, "2025-06-01", "2025-06-30"),
			Percentage:  50,
		}},
	}}
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: true}, repo, nil)

	p, err := uc.CreatePeriod(context.Background(), PeriodInput{
		PersonnelID: person,
		Start:       date(t, "2025-07-01"),
		End:         date(t, "2025-07-31"),
		Percentage:  80,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatalf("expected an assigned period id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create, got %d", len(repo.created))
	}
}

func TestAvailabilityUsecase_UpdatePeriod_ExcludesSelfFromOverlap(t *testing.T) {
	person := uuid.New()
	periodID := uuid.New()
	repo := &mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{
		person: {{
			ID:          periodID,
			PersonnelID: person,
			Range:       testRange(t, "2025-06-01", "2025-06-30"),
			Percentage:  50,
		}},
	}}
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: true}, repo, nil)

	// Shrinking the same period still intersects its stored range; the
	// record under update must not conflict with itself.
	p, err := uc.UpdatePeriod(context.Background(), periodID, PeriodInput{
		PersonnelID: person,
		Start:       date(t, "2025-06-10"),
		End:         date(t, "2025-06-20"),
		Percentage:  75,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID != periodID {
		t.Fatalf("expected the same period id")
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
}

func TestAvailabilityUsecase_CreatePeriod_InvalidPercentage(t *testing.T) {
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: true}, &mockAvailabilityRepo{}, nil)

	_, err := uc.CreatePeriod(context.Background(), PeriodInput{
		PersonnelID: uuid.New(),
		Start:       date(t, "2025-06-01"),
		End:         date(t, "2025-06-30"),
		Percentage:  120,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAvailabilityUsecase_CreatePeriod_UnknownPersonnel(t *testing.T) {
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: false}, &mockAvailabilityRepo{}, nil)

	_, err := uc.CreatePeriod(context.Background(), PeriodInput{
		PersonnelID: uuid.New(),
		Start:       date(t, "2025-06-01"),
		End:         date(t, "2025-06-30"),
		Percentage:  50,
	})
	if !errors.Is(err, ErrPersonnelNotFound) {
		t.Fatalf("expected ErrPersonnelNotFound, got %v", err)
	}
}

func TestAvailabilityUsecase_Report_WeightsByDuration(t *testing.T) {
	person := uuid.New()
	repo := &mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{
		person: {{
			ID:          uuid.New(),
			PersonnelID: person,
			Range:       testRange(t, "2025-06-01", "2025-06-15"),
			Percentage:  0,
		}},
	}}
	uc := NewAvailabilityUsecase(&mockPersonnelRepo{exists: true}, repo, nil)

	// 15 of 30 days at 0%, the rest uncovered at the 100% default.
	report, err := uc.Report(context.Background(), person, date(t, "2025-06-01"), date(t, "2025-06-30"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Percentage != 50 {
		t.Fatalf("expected weighted 50, got %d", report.Percentage)
	}
	if len(report.Periods) != 1 {
		t.Fatalf("expected the contributing period returned")
	}
}

func TestAvailabilityUsecase_CreatePeriod_FiresInvalidation(t *testing.T) {
	person := uuid.New()
	invalidated := 0
	uc := NewAvailabilityUsecase(
		&mockPersonnelRepo{exists: true},
		&mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{}},
		func(context.Context) { invalidated++ },
	)

	if _, err := uc.CreatePeriod(context.Background(), PeriodInput{
		PersonnelID: person,
		Start:       date(t, "2025-06-01"),
		End:         date(t, "2025-06-30"),
		Percentage:  50,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if invalidated != 1 {
		t.Fatalf("expected one invalidation, got %d", invalidated)
	}
}

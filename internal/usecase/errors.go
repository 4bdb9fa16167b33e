package usecase

import (
	"errors"
	"fmt"

	"crewplan/internal/domain/allocation"
	"crewplan/internal/domain/availability"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
	ErrProjectNotFound   = errors.New("project not found")
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrNoRequiredSkills  = errors.New("project has no required skills")
)

// CapacityConflictError rejects an allocation proposal that would push the
// personnel past 100% on an overlapping window. Recoverable: the caller
// surfaces the conflicts and total so the user can adjust.
type CapacityConflictError struct {
	Total     int
	Conflicts []allocation.Allocation
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("allocation exceeds capacity: total=%d%% conflicts=%d", e.Total, len(e.Conflicts))
}

// PeriodOverlapError rejects an availability period that shares days with an
// existing one for the same personnel.
type PeriodOverlapError struct {
	Conflicting availability.Period
}

func (e *PeriodOverlapError) Error() string {
	return fmt.Sprintf(
		"availability period overlaps existing period %s (%s..%s)",
		e.Conflicting.ID,
		e.Conflicting.Range.Start.Format("2006-01-02"),
		e.Conflicting.Range.End.Format("2006-01-02"),
	)
}

package allocation

import (
	"github.com/google/uuid"

	"crewplan/internal/domain/interval"
)

// Allocation commits a percentage of a personnel's time to a project over a
// closed date range.
type Allocation struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	PersonnelID uuid.UUID
	Percentage  int
	Range       interval.Range
	Role        string
}

// Decision is the outcome of a conflict check. On rejection Conflicts lists
// every existing allocation that intersects the proposal and Total carries
// the summed percentage that breached the cap.
type Decision struct {
	Accepted  bool
	Total     int
	Conflicts []Allocation
}

// Check evaluates a proposed allocation against the personnel's existing
// allocations across all projects. Every existing allocation intersecting the
// proposed range contributes its full percentage to the sum regardless of how
// many days actually overlap; the proposal is rejected when the sum exceeds
// 100. Disjoint allocations never count.
func Check(existing []Allocation, proposed Allocation) Decision {
	total := proposed.Percentage
	conflicts := make([]Allocation, 0)
	for _, a := range existing {
		if !a.Range.Intersects(proposed.Range) {
			continue
		}
		total += a.Percentage
		conflicts = append(conflicts, a)
	}

	if total > 100 {
		return Decision{Accepted: false, Total: total, Conflicts: conflicts}
	}
	return Decision{Accepted: true, Total: total}
}

package availability

import (
	"math"

	"github.com/google/uuid"

	"crewplan/internal/domain/interval"
)

// Period is one availability record for a personnel. Periods for the same
// personnel never overlap; FindOverlap enforces that on the write path.
type Period struct {
	ID          uuid.UUID
	PersonnelID uuid.UUID
	Range       interval.Range
	Percentage  int
	Notes       string
}

// CoarseWindow averages the percentages of all periods intersecting the
// window, without weighting by overlap length. No intersecting period means
// fully available: 100. Candidate ranking uses this cheap figure.
func CoarseWindow(periods []Period, window interval.Range) int {
	sum := 0
	n := 0
	for _, p := range periods {
		if !p.Range.Intersects(window) {
			continue
		}
		sum += p.Percentage
		n++
	}
	if n == 0 {
		return 100
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// WeightedWindow walks the window day by day: each day takes the percentage
// of the period covering it, or 100 when uncovered. The result is the mean of
// the per-day percentages, so longer periods weigh proportionally more.
func WeightedWindow(periods []Period, window interval.Range) int {
	days := window.Days()
	if days <= 0 {
		return 100
	}

	sum := 0
	day := window.Start
	for i := 0; i < days; i++ {
		pct := 100
		for _, p := range periods {
			if p.Range.Contains(day) {
				pct = p.Percentage
				break
			}
		}
		sum += pct
		day = day.AddDate(0, 0, 1)
	}
	return int(math.Round(float64(sum) / float64(days)))
}

// FindOverlap returns the first existing period that shares at least one day
// with the proposed range, skipping the period being updated (pass uuid.Nil
// for inserts). Adjacent periods are allowed.
func FindOverlap(existing []Period, proposed interval.Range, excludeID uuid.UUID) (Period, bool) {
	for _, p := range existing {
		if excludeID != uuid.Nil && p.ID == excludeID {
			continue
		}
		if p.Range.Intersects(proposed) {
			return p, true
		}
	}
	return Period{}, false
}

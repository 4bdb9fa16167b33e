package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/domain/interval"
)

func rng(t *testing.T, start, end string) interval.Range {
	t.Helper()
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	r, err := interval.New(s, e)
	if err != nil {
		t.Fatalf("interval.New: %v", err)
	}
	return r
}

func TestCheck_OverlapExceedsCapacity(t *testing.T) {
	personnel := uuid.New()
	existing := []Allocation{{
		ID:          uuid.New(),
		PersonnelID: personnel,
		Percentage:  60,
		Range:       rng(t, "2025-03-01", "2025-04-30"),
	}}
	proposed := Allocation{
		PersonnelID: personnel,
		Percentage:  50,
		Range:       rng(t, "2025-04-01", "2025-05-31"),
	}

	d := Check(existing, proposed)
	if d.Accepted {
		t.Fatalf("expected rejection")
	}
	if d.Total != 110 {
		t.Fatalf("expected total 110, got %d", d.Total)
	}
	if len(d.Conflicts) != 1 || d.Conflicts[0].ID != existing[0].ID {
		t.Fatalf("expected the existing allocation reported, got %+v", d.Conflicts)
	}
}

func TestCheck_ExactCapacityAccepted(t *testing.T) {
	existing := []Allocation{{
		ID:         uuid.New(),
		Percentage: 60,
		Range:      rng(t, "2025-03-01", "2025-04-30"),
	}}
	proposed := Allocation{Percentage: 40, Range: rng(t, "2025-04-01", "2025-05-31")}

	d := Check(existing, proposed)
	if !d.Accepted {
		t.Fatalf("expected acceptance at exactly 100, total=%d", d.Total)
	}
	if d.Total != 100 {
		t.Fatalf("expected total 100, got %d", d.Total)
	}
}

func TestCheck_DisjointAlwaysAccepted(t *testing.T) {
	existing := []Allocation{
		{ID: uuid.New(), Percentage: 100, Range: rng(t, "2025-01-01", "2025-02-28")},
		{ID: uuid.New(), Percentage: 100, Range: rng(t, "2025-03-01", "2025-04-30")},
	}
	proposed := Allocation{Percentage: 100, Range: rng(t, "2025-05-01", "2025-06-30")}

	d := Check(existing, proposed)
	if !d.Accepted {
		t.Fatalf("expected disjoint proposal accepted")
	}
	if d.Total != 100 {
		t.Fatalf("expected total 100 (proposal only), got %d", d.Total)
	}
}

func TestCheck_ConservativeWholeOverlapSum(t *testing.T) {
	// Two existing allocations that never co-occur with each other, but both
	// intersect the proposal. The check sums full percentages, so the
	// proposal is rejected even though no single day reaches 120.
	existing := []Allocation{
		{ID: uuid.New(), Percentage: 50, Range: rng(t, "2025-01-01", "2025-01-31")},
		{ID: uuid.New(), Percentage: 50, Range: rng(t, "2025-03-01", "2025-03-31")},
	}
	proposed := Allocation{Percentage: 20, Range: rng(t, "2025-01-15", "2025-03-15")}

	d := Check(existing, proposed)
	if d.Accepted {
		t.Fatalf("expected conservative rejection")
	}
	if d.Total != 120 {
		t.Fatalf("expected total 120, got %d", d.Total)
	}
	if len(d.Conflicts) != 2 {
		t.Fatalf("expected both allocations reported, got %d", len(d.Conflicts))
	}
}

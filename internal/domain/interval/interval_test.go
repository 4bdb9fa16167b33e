package interval

import (
	"errors"
	"testing"
	"time"
)

func mustRange(t *testing.T, start, end string) Range {
	t.Helper()
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	r, err := New(s, e)
	if err != nil {
		t.Fatalf("New(%s, %s): %v", start, end, err)
	}
	return r
}

func TestNew_RejectsInvertedBounds(t *testing.T) {
	end, _ := time.Parse("2006-01-02", "2025-01-01")
	start, _ := time.Parse("2006-01-02", "2025-02-01")
	if _, err := New(start, end); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestIntersects(t *testing.T) {
	a := mustRange(t, "2025-03-01", "2025-04-30")
	b := mustRange(t, "2025-04-01", "2025-05-31")
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatalf("expected overlapping ranges to intersect")
	}

	// Same bounds intersect.
	if !a.Intersects(a) {
		t.Fatalf("expected identical ranges to intersect")
	}

	// Adjacent ranges (gap of zero days between end and next start) do not.
	c := mustRange(t, "2025-05-01", "2025-05-31")
	if a.Intersects(c) {
		t.Fatalf("expected adjacent ranges not to intersect")
	}

	// Single shared day intersects.
	d := mustRange(t, "2025-04-30", "2025-05-15")
	if !a.Intersects(d) {
		t.Fatalf("expected ranges sharing one day to intersect")
	}
}

func TestClamp(t *testing.T) {
	r := mustRange(t, "2025-01-01", "2025-12-31")
	w := mustRange(t, "2025-06-01", "2025-06-30")

	got, ok := r.Clamp(w)
	if !ok {
		t.Fatalf("expected clamp to succeed")
	}
	if !got.Start.Equal(w.Start) || !got.End.Equal(w.End) {
		t.Fatalf("unexpected clamped range: %v", got)
	}

	outside := mustRange(t, "2026-01-01", "2026-01-31")
	if _, ok := r.Clamp(outside); ok {
		t.Fatalf("expected clamp against disjoint window to fail")
	}
}

func TestDays_Inclusive(t *testing.T) {
	if got := mustRange(t, "2025-04-01", "2025-04-01").Days(); got != 1 {
		t.Fatalf("single day range: got %d days", got)
	}
	if got := mustRange(t, "2025-04-01", "2025-04-30").Days(); got != 30 {
		t.Fatalf("april: got %d days", got)
	}
}

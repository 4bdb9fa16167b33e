package interval

import (
	"errors"
	"time"
)

var ErrInvalidBounds = errors.New("interval end before start")

// Range is a closed date range [Start, End]. Both bounds are inclusive and
// interpreted at day granularity; callers normalize to UTC midnight.
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Range, error) {
	start = Day(start)
	end = Day(end)
	if end.Before(start) {
		return Range{}, ErrInvalidBounds
	}
	return Range{Start: start, End: end}, nil
}

// Day truncates a timestamp to UTC midnight.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Intersects reports whether two closed ranges share at least one day:
// max(a.Start, b.Start) <= min(a.End, b.End). Adjacent ranges (one ends the
// day before the other starts) do not intersect.
func (r Range) Intersects(other Range) bool {
	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := r.End
	if other.End.Before(end) {
		end = other.End
	}
	return !start.After(end)
}

// Contains reports whether a day falls inside the range.
func (r Range) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Clamp narrows the range to the window, returning false when they do not
// intersect at all.
func (r Range) Clamp(window Range) (Range, bool) {
	if !r.Intersects(window) {
		return Range{}, false
	}
	out := r
	if window.Start.After(out.Start) {
		out.Start = window.Start
	}
	if window.End.Before(out.End) {
		out.End = window.End
	}
	return out, true
}

// Days counts the days in the closed range; a single-day range counts 1.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

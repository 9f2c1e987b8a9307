package timeline

import (
	"sort"
	"time"
)

// BusySource identifies where a busy interval came from, for conflict
// diagnostics surfaced to callers.
type BusySource string

const (
	SourceBooking      BusySource = "booking"
	SourceExternal     BusySource = "external_calendar"
	SourceException    BusySource = "availability_exception"
	SourceOutsideHours BusySource = "outside_working_hours"
)

// BusyInterval is one entry of a consultant's busy timeline.
type BusyInterval struct {
	Interval Interval
	Source   BusySource
	// Ref carries a source-specific identifier (booking id, external
	// event id, exception reason) for diagnostics.
	Ref string
}

// Merge unions a set of busy intervals into an ordered, non-overlapping
// timeline. Standard interval-union: sort by start, fold while
// next.start <= current.end. Adjacent intervals coalesce; the earliest
// contributing source is kept on the merged entry.
func Merge(intervals []BusyInterval) []BusyInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]BusyInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Interval.start.Before(sorted[j].Interval.start)
	})

	merged := make([]BusyInterval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if !next.Interval.start.After(current.Interval.end) {
			if next.Interval.end.After(current.Interval.end) {
				current.Interval.end = next.Interval.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// FirstOverlap returns the first timeline entry overlapping candidate,
// or nil. The timeline must be ordered by start (as produced by Merge).
func FirstOverlap(busy []BusyInterval, candidate Interval) *BusyInterval {
	for i := range busy {
		if busy[i].Interval.start.After(candidate.end) || busy[i].Interval.start.Equal(candidate.end) {
			break
		}
		if busy[i].Interval.Overlaps(candidate) {
			return &busy[i]
		}
	}
	return nil
}

// Subtract removes the given windows from base, returning the parts of
// base not covered by any window. Windows must be ordered and disjoint.
func Subtract(base Interval, windows []Interval) []Interval {
	var out []Interval
	cursor := base.start
	for _, w := range windows {
		if !w.end.After(cursor) {
			continue
		}
		if !w.start.Before(base.end) {
			break
		}
		if w.start.After(cursor) {
			out = append(out, Interval{start: cursor, end: minTime(w.start, base.end)})
		}
		cursor = maxTime(cursor, w.end)
	}
	if cursor.Before(base.end) {
		out = append(out, Interval{start: cursor, end: base.end})
	}
	return out
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

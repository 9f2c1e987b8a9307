// Package schedule holds the conflict resolver, the single overlap
// authority shared by slot generation and booking commits.
package schedule

import (
	"context"
	"time"

	"consultbook/internal/domain/availability"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// NoticeKind classifies a reduced-confidence warning attached to slot
// responses. Notices degrade confidence without blocking availability.
type NoticeKind string

const (
	// NoticeStaleExternal: mirrored busy intervals were excluded because
	// they were not refreshed within the staleness threshold.
	NoticeStaleExternal NoticeKind = "stale_external_intervals"
	// NoticeSyncDegraded: a platform has failed enough consecutive syncs
	// that its busy data may be incomplete.
	NoticeSyncDegraded NoticeKind = "sync_degraded"
)

type Notice struct {
	Kind     NoticeKind
	Platform string
	Count    int
}

// ConflictReport names the first busy entry a candidate collides with.
type ConflictReport struct {
	Candidate timeline.Interval
	Overlap   timeline.BusyInterval
}

// Snapshot is everything the resolver needs about one consultant over
// one window, loaded in a single pass so generator and committer reason
// over the same state.
type Snapshot struct {
	Template   *availability.Template
	Exceptions []*availability.Exception
	Bookings   []shared.BookingBusySnapshot
	External   []shared.ExternalBusySnapshot
	Health     []shared.PlatformHealth
}

type Resolver struct {
	staleAfter       time.Duration
	degradedFailures int
}

func NewResolver(cal config.CalendarConfig) *Resolver {
	return &Resolver{
		staleAfter:       time.Duration(cal.StaleAfterCycles) * cal.SyncInterval,
		degradedFailures: cal.DegradedAfterFailures,
	}
}

// LoadSnapshot gathers the consultant's schedule state for [from, to)
// through the given read surface. Inside a commit transaction the reads
// are tx-backed, so the commit re-check sees serialized state.
func LoadSnapshot(ctx context.Context, reads shared.ScheduleReads, consultantID uuid.UUID, from, to time.Time) (*Snapshot, error) {
	templateSnap, err := reads.TemplateFor(ctx, consultantID, from)
	if err != nil {
		return nil, err
	}
	template, err := templateSnap.ToDomain()
	if err != nil {
		return nil, err
	}

	exceptionSnaps, err := reads.ExceptionsIn(ctx, consultantID, from, to)
	if err != nil {
		return nil, err
	}
	exceptions := make([]*availability.Exception, 0, len(exceptionSnaps))
	for _, snap := range exceptionSnaps {
		ex, err := snap.ToDomain()
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, ex)
	}

	bookings, err := reads.ActiveBookingsIn(ctx, consultantID, from, to)
	if err != nil {
		return nil, err
	}
	external, err := reads.ExternalBusyIn(ctx, consultantID, from, to)
	if err != nil {
		return nil, err
	}
	health, err := reads.SyncHealth(ctx, consultantID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Template:   template,
		Exceptions: exceptions,
		Bookings:   bookings,
		External:   external,
		Health:     health,
	}, nil
}

// BusyTimeline merges bookings, fresh external busy intervals, and
// blocked exceptions into an ordered timeline. Every entry is expanded
// by the template's buffers before the union, so the timeline is
// directly comparable against buffered candidates.
//
// Stale external entries are excluded rather than treated as busy:
// availability wins over false blocking, and the exclusion surfaces as
// a reduced-confidence notice instead.
func (r *Resolver) BusyTimeline(snap *Snapshot, now time.Time) ([]timeline.BusyInterval, []Notice) {
	before := snap.Template.BufferBefore()
	after := snap.Template.BufferAfter()

	var busy []timeline.BusyInterval
	for _, b := range snap.Bookings {
		iv, err := timeline.NewInterval(b.Start, b.End)
		if err != nil {
			continue
		}
		busy = append(busy, timeline.BusyInterval{
			Interval: iv.Expand(before, after),
			Source:   timeline.SourceBooking,
			Ref:      b.ID.String(),
		})
	}

	stale := 0
	for _, e := range snap.External {
		if now.Sub(e.LastSyncedAt) > r.staleAfter {
			stale++
			continue
		}
		iv, err := timeline.NewInterval(e.Start, e.End)
		if err != nil {
			continue
		}
		busy = append(busy, timeline.BusyInterval{
			Interval: iv.Expand(before, after),
			Source:   timeline.SourceExternal,
			Ref:      e.Platform + "/" + e.SourceEventID,
		})
	}

	for _, ex := range snap.Exceptions {
		if ex.Kind() != availability.ExceptionBlocked {
			continue
		}
		busy = append(busy, timeline.BusyInterval{
			Interval: ex.Interval().Expand(before, after),
			Source:   timeline.SourceException,
			Ref:      ex.Reason(),
		})
	}

	var notices []Notice
	if stale > 0 {
		notices = append(notices, Notice{Kind: NoticeStaleExternal, Count: stale})
	}
	for _, h := range snap.Health {
		if h.ConsecutiveFailures >= r.degradedFailures {
			notices = append(notices, Notice{
				Kind:     NoticeSyncDegraded,
				Platform: h.Platform,
				Count:    h.ConsecutiveFailures,
			})
		}
	}

	return timeline.Merge(busy), notices
}

// DetectConflict returns nil when the candidate is offerable: it lies
// inside working hours (or an opened exception) and its buffered form
// misses every busy entry. Both the slot generator and the booking
// commit path go through here; nothing else may reimplement the test.
func (r *Resolver) DetectConflict(snap *Snapshot, candidate timeline.Interval, now time.Time) *ConflictReport {
	if !r.withinWorkingHours(snap, candidate) {
		return &ConflictReport{
			Candidate: candidate,
			Overlap: timeline.BusyInterval{
				Interval: candidate,
				Source:   timeline.SourceOutsideHours,
			},
		}
	}

	busy, _ := r.BusyTimeline(snap, now)
	buffered := candidate.Expand(snap.Template.BufferBefore(), snap.Template.BufferAfter())
	if hit := timeline.FirstOverlap(busy, buffered); hit != nil {
		return &ConflictReport{Candidate: candidate, Overlap: *hit}
	}
	return nil
}

// EarliestBookableStart returns the first instant a new booking may
// occupy: midnight of the consultant-local day the lead time lands in.
// Lead time is day-granular, so a day is either offered whole or not
// at all, and the present day is never offered.
func EarliestBookableStart(now time.Time, lead time.Duration, loc *time.Location) time.Time {
	local := now.Add(lead).In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	if !dayStart.After(today) {
		dayStart = today.AddDate(0, 0, 1)
	}
	return dayStart
}

// withinWorkingHours: an opened exception admits a slot wholesale,
// otherwise the recurring template decides. Blocked exceptions are
// handled by the busy timeline so conflicts report the right source.
func (r *Resolver) withinWorkingHours(snap *Snapshot, candidate timeline.Interval) bool {
	for _, ex := range snap.Exceptions {
		if ex.OpensSlot(candidate) {
			return true
		}
	}
	return snap.Template.CoversSlot(candidate)
}

package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"consultbook/internal/domain/timeline"
	"consultbook/internal/infra"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/usecase/schedule"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service type not found")

// SlotOffer is one offerable candidate. Offers are ephemeral and
// advisory: nothing is reserved until a commit succeeds.
type SlotOffer struct {
	ConsultantID   uuid.UUID `json:"consultant_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ServiceType    string    `json:"service_type"`
	BasePriceCents int64     `json:"base_price_cents"`
}

type SlotsResult struct {
	Slots   []SlotOffer       `json:"slots"`
	Notices []schedule.Notice `json:"notices,omitempty"`
}

type SlotQueries interface {
	ListAvailableSlots(ctx context.Context, consultantID uuid.UUID, serviceType string, from, to time.Time) (*SlotsResult, error)
}

type slotQueriesImpl struct {
	uow       shared.UnitOfWork
	resolver  *schedule.Resolver
	slotCache *cache.SlotCache
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       config.SchedulingConfig
	anchors   []anchorTime
}

// anchorTime is a policy-defined local wall-clock start time.
type anchorTime struct {
	hour   int
	minute int
}

func NewSlotQueries(
	uow shared.UnitOfWork,
	resolver *schedule.Resolver,
	slotCache *cache.SlotCache,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.SchedulingConfig,
) (SlotQueries, error) {
	anchors, err := parseAnchors(cfg.AnchorTimes)
	if err != nil {
		return nil, err
	}
	return &slotQueriesImpl{
		uow:       uow,
		resolver:  resolver,
		slotCache: slotCache,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
		anchors:   anchors,
	}, nil
}

func parseAnchors(specs []string) ([]anchorTime, error) {
	if len(specs) == 0 {
		return nil, errors.New("at least one slot anchor time is required")
	}
	out := make([]anchorTime, 0, len(specs))
	for _, spec := range specs {
		hh, mm, ok := strings.Cut(strings.TrimSpace(spec), ":")
		if !ok {
			return nil, fmt.Errorf("invalid anchor time %q, want HH:MM", spec)
		}
		hour, err := strconv.Atoi(hh)
		if err != nil || hour < 0 || hour > 23 {
			return nil, fmt.Errorf("invalid anchor hour in %q", spec)
		}
		minute, err := strconv.Atoi(mm)
		if err != nil || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("invalid anchor minute in %q", spec)
		}
		out = append(out, anchorTime{hour: hour, minute: minute})
	}
	return out, nil
}

// ListAvailableSlots projects the consultant's free timeline over the
// requested window into discrete offers. The window is clamped to the
// configured horizon and the lead time; days the template leaves empty
// (weekends, typically) produce nothing.
func (q *slotQueriesImpl) ListAvailableSlots(ctx context.Context, consultantID uuid.UUID, serviceType string, from, to time.Time) (*SlotsResult, error) {
	q.metrics.SlotRequests.Inc()

	now := q.clock.Now()
	if from.Before(now) {
		from = now
	}
	horizon := now.AddDate(0, 0, q.cfg.WindowDays)
	if to.After(horizon) {
		to = horizon
	}
	// Minute granularity keeps the cache key stable across requests
	// landing inside the same minute.
	from = from.Truncate(time.Minute)
	to = to.Truncate(time.Minute)
	if !from.Before(to) {
		return &SlotsResult{}, nil
	}

	var cached SlotsResult
	err := q.slotCache.Get(ctx, consultantID, serviceType, from, to, &cached)
	if err == nil {
		q.metrics.SlotCacheHits.Inc()
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("slot cache read failed", "error", err.Error())
	}

	reads := q.uow.Reads()
	service, err := reads.ServiceByType(ctx, serviceType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	snap, err := schedule.LoadSnapshot(ctx, reads, consultantID,
		from.Add(-24*time.Hour), to.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	result := q.generate(snap, service, consultantID, from, to, now)

	if err := q.slotCache.Set(ctx, consultantID, serviceType, from, to, result); err != nil {
		slog.Warn("slot cache write failed", "error", err.Error())
	}
	return result, nil
}

func (q *slotQueriesImpl) generate(snap *schedule.Snapshot, service *shared.ServiceSnapshot, consultantID uuid.UUID, from, to, now time.Time) *SlotsResult {
	loc := snap.Template.Location()
	_, notices := q.resolver.BusyTimeline(snap, now)

	// Lead time is day-granular in the consultant's timezone: once a
	// day clears the lead time, all of its anchors are offerable, so a
	// mid-afternoon query does not eat into the first bookable day.
	if earliest := schedule.EarliestBookableStart(now, q.cfg.LeadTime, loc); from.Before(earliest) {
		from = earliest
	}
	if !from.Before(to) {
		return &SlotsResult{Notices: notices}
	}

	var offers []SlotOffer
	day := time.Date(from.In(loc).Year(), from.In(loc).Month(), from.In(loc).Day(), 0, 0, 0, 0, loc)
	for ; day.Before(to); day = day.AddDate(0, 0, 1) {
		if q.dayAtCapacity(snap, day) {
			continue
		}
		for _, anchor := range q.anchors {
			start := day.Add(time.Duration(anchor.hour)*time.Hour + time.Duration(anchor.minute)*time.Minute)
			if start.Before(from) || !start.Before(to) {
				continue
			}
			candidate, err := timeline.NewInterval(start, start.Add(service.Duration))
			if err != nil {
				continue
			}
			if q.resolver.DetectConflict(snap, candidate, now) != nil {
				continue
			}
			offers = append(offers, SlotOffer{
				ConsultantID:   consultantID,
				Start:          candidate.Start(),
				End:            candidate.End(),
				ServiceType:    service.Type,
				BasePriceCents: service.BasePriceCents,
			})
		}
	}

	return &SlotsResult{Slots: offers, Notices: notices}
}

// dayAtCapacity skips a whole day once its active bookings reach the
// template's per-day limit; offering more would only fail at commit.
func (q *slotQueriesImpl) dayAtCapacity(snap *schedule.Snapshot, dayStart time.Time) bool {
	maxPerDay := snap.Template.MaxPerDay()
	if maxPerDay <= 0 {
		return false
	}
	loc := snap.Template.Location()
	y, m, d := dayStart.Date()
	count := 0
	for _, b := range snap.Bookings {
		by, bm, bd := b.Start.In(loc).Date()
		if by == y && bm == m && bd == d {
			count++
		}
	}
	return count >= maxPerDay
}

package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// SyncService runs reconciliation for every linked account of a
// consultant. A platform failure is isolated: the other platforms
// still sync and the failure only bumps that platform's counter.
type SyncService struct {
	uow      shared.UnitOfWork
	adapters map[Platform]Adapter
	cache    *cache.SlotCache
	metrics  *metrics.Metrics
	clock    clock.Clock
	cfg      config.SchedulingConfig

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSyncService(
	uow shared.UnitOfWork,
	adapters []Adapter,
	slotCache *cache.SlotCache,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.SchedulingConfig,
) *SyncService {
	byPlatform := make(map[Platform]Adapter, len(adapters))
	for _, a := range adapters {
		byPlatform[a.Platform()] = a
	}
	return &SyncService{
		uow:      uow,
		adapters: byPlatform,
		cache:    slotCache,
		metrics:  m,
		clock:    clk,
		cfg:      cfg,
		inFlight: make(map[string]struct{}),
	}
}

// SyncConsultant reconciles every linked platform for one consultant.
// Concurrent calls for the same consultant and platform are dropped
// rather than queued; the next cycle picks up whatever was skipped.
func (s *SyncService) SyncConsultant(ctx context.Context, consultantID uuid.UUID) {
	accounts, err := s.uow.Reads().ExternalAccounts(ctx, consultantID)
	if err != nil {
		slog.Error("failed to list external accounts",
			"consultant_id", consultantID, "error", err.Error())
		return
	}

	changed := false
	for _, account := range accounts {
		platform := Platform(account.Platform)
		adapter, ok := s.adapters[platform]
		if !ok {
			slog.Warn("no adapter registered for platform", "platform", account.Platform)
			continue
		}

		if !s.tryAcquire(consultantID, platform) {
			continue
		}
		result, err := s.syncAccount(ctx, adapter, account)
		s.release(consultantID, platform)

		if err != nil {
			s.metrics.SyncRuns.WithLabelValues(string(platform), "failure").Inc()
			slog.Error("calendar sync failed",
				"consultant_id", consultantID,
				"platform", account.Platform,
				"error", err.Error())
			continue
		}

		s.metrics.SyncRuns.WithLabelValues(string(platform), "success").Inc()
		if result.Added+result.Updated+result.Removed > 0 {
			changed = true
			slog.Info("calendar sync applied changes",
				"consultant_id", consultantID,
				"platform", account.Platform,
				"added", result.Added,
				"updated", result.Updated,
				"removed", result.Removed)
		}
	}

	if changed {
		if err := s.cache.InvalidateConsultant(ctx, consultantID); err != nil {
			slog.Warn("failed to invalidate slot cache after sync",
				"consultant_id", consultantID, "error", err.Error())
		}
	}
}

func (s *SyncService) syncAccount(ctx context.Context, adapter Adapter, account shared.ExternalAccountSnapshot) (SyncResult, error) {
	now := s.clock.Now()
	windowStart := now
	windowEnd := now.AddDate(0, 0, s.cfg.WindowDays+1)

	timer := time.Now()
	events, err := adapter.FetchBusyIntervals(ctx, account.AccountRef, windowStart, windowEnd)
	s.metrics.SyncDuration.WithLabelValues(string(adapter.Platform())).Observe(time.Since(timer).Seconds())

	if err != nil {
		if recErr := s.recordFailure(ctx, account.ConsultantID, adapter.Platform(), now); recErr != nil {
			slog.Warn("failed to record sync failure", "error", recErr.Error())
		}
		return SyncResult{}, err
	}

	var result SyncResult
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, err = Reconcile(ctx, tx, account.ConsultantID, adapter.Platform(), events, windowStart, windowEnd, now)
		if err != nil {
			return err
		}
		return tx.ExternalEvents().RecordSyncSuccess(ctx, account.ConsultantID, string(adapter.Platform()), now)
	})
	if err != nil {
		if recErr := s.recordFailure(ctx, account.ConsultantID, adapter.Platform(), now); recErr != nil {
			slog.Warn("failed to record sync failure", "error", recErr.Error())
		}
		return SyncResult{}, err
	}
	return result, nil
}

var _ shared.CalendarMirror = (*SyncService)(nil)

// MirrorBooking pushes a committed booking to every linked platform so
// the consultant's own calendar shows it. The returned event ids are
// stored on the mirror rows so cancellation can delete them upstream.
// Best-effort: a platform failure is logged and skipped.
func (s *SyncService) MirrorBooking(ctx context.Context, b *booking.Booking) {
	accounts, err := s.uow.Reads().ExternalAccounts(ctx, b.ConsultantID())
	if err != nil {
		slog.Warn("failed to list external accounts for mirror",
			"consultant_id", b.ConsultantID(), "error", err.Error())
		return
	}

	now := s.clock.Now()
	bookingID := b.ID()
	for _, account := range accounts {
		adapter, ok := s.adapters[Platform(account.Platform)]
		if !ok {
			continue
		}

		eventID, err := adapter.PushEvent(ctx, account.AccountRef,
			"Consultation: "+b.ServiceType(), b.Interval().Start(), b.Interval().End())
		if err != nil {
			slog.Warn("failed to push booking to external calendar",
				"booking_id", bookingID,
				"platform", account.Platform,
				"error", err.Error())
			continue
		}

		err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.ExternalEvents().Insert(ctx, shared.ExternalEventRecord{
				ConsultantID:  b.ConsultantID(),
				Platform:      account.Platform,
				SourceEventID: eventID,
				Start:         b.Interval().Start(),
				End:           b.Interval().End(),
				SyncedAt:      now,
				BookingID:     &bookingID,
			})
		})
		if err != nil {
			// The pushed event survives upstream; the next sync cycle
			// re-mirrors it as an ordinary busy interval.
			slog.Warn("failed to record pushed calendar event",
				"booking_id", bookingID,
				"platform", account.Platform,
				"error", err.Error())
		}
	}
}

// UnmirrorBooking deletes the events MirrorBooking pushed for a
// booking, locally and upstream.
func (s *SyncService) UnmirrorBooking(ctx context.Context, b *booking.Booking) {
	var pushed []shared.PushedEventRef
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		refs, err := tx.ExternalEvents().DeleteByBooking(ctx, b.ID())
		if err != nil {
			return err
		}
		pushed = refs
		return nil
	})
	if err != nil {
		slog.Warn("failed to delete pushed calendar events",
			"booking_id", b.ID(), "error", err.Error())
		return
	}
	if len(pushed) == 0 {
		return
	}

	accounts, err := s.uow.Reads().ExternalAccounts(ctx, b.ConsultantID())
	if err != nil {
		slog.Warn("failed to list external accounts for unmirror",
			"consultant_id", b.ConsultantID(), "error", err.Error())
		return
	}
	refByPlatform := make(map[string]string, len(accounts))
	for _, account := range accounts {
		refByPlatform[account.Platform] = account.AccountRef
	}

	for _, ref := range pushed {
		adapter, ok := s.adapters[Platform(ref.Platform)]
		accountRef, linked := refByPlatform[ref.Platform]
		if !ok || !linked {
			continue
		}
		if err := adapter.DeleteEvent(ctx, accountRef, ref.SourceEventID); err != nil {
			slog.Warn("failed to delete pushed calendar event upstream",
				"booking_id", b.ID(),
				"platform", ref.Platform,
				"event_id", ref.SourceEventID,
				"error", err.Error())
		}
	}
}

func (s *SyncService) recordFailure(ctx context.Context, consultantID uuid.UUID, platform Platform, at time.Time) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ExternalEvents().RecordSyncFailure(ctx, consultantID, string(platform), at)
	})
}

func (s *SyncService) tryAcquire(consultantID uuid.UUID, platform Platform) bool {
	key := consultantID.String() + "/" + string(platform)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *SyncService) release(consultantID uuid.UUID, platform Platform) {
	key := consultantID.String() + "/" + string(platform)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

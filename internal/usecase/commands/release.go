package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/infra"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const reclaimBatchSize = 100

type ReleaseCommands interface {
	// ReleaseExpired reclaims pending_payment bookings older than the
	// payment timeout. Returns how many were released.
	ReleaseExpired(ctx context.Context) (int, error)
	// ForceRelease is the admin override: cancels a live booking
	// regardless of cutoff and invalidates the slot cache immediately.
	ForceRelease(ctx context.Context, bookingID uuid.UUID, reason string) error
	// CancelBooking is the client-facing cancellation, subject to the
	// cancellation cutoff.
	CancelBooking(ctx context.Context, bookingID, clientID uuid.UUID) error
}

type releaseUseCaseImpl struct {
	uow       shared.UnitOfWork
	slotCache *cache.SlotCache
	mirror    shared.CalendarMirror
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       config.SchedulingConfig
}

func NewReleaseUseCase(
	uow shared.UnitOfWork,
	slotCache *cache.SlotCache,
	mirror shared.CalendarMirror,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.SchedulingConfig,
) ReleaseCommands {
	return &releaseUseCaseImpl{
		uow:       uow,
		slotCache: slotCache,
		mirror:    mirror,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
	}
}

// ReleaseExpired runs one reclamation sweep. Each booking releases in
// its own transaction with the optimistic version check, so a sweep
// racing a payment confirmation loses cleanly on the contested booking
// and carries on with the rest.
func (u *releaseUseCaseImpl) ReleaseExpired(ctx context.Context) (int, error) {
	now := u.clock.Now()
	cutoff := now.Add(-u.cfg.PendingPaymentTimeout)

	var expired []*booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Bookings().FindExpiredPending(ctx, cutoff, reclaimBatchSize)
		if err != nil {
			return err
		}
		expired = found
		return nil
	})
	if err != nil {
		return 0, err
	}

	released := 0
	for _, b := range expired {
		if err := u.releaseOne(ctx, b, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Payment confirmed between the scan and this release.
				continue
			}
			slog.Error("failed to release expired booking",
				"booking_id", b.ID(), "error", err.Error())
			continue
		}
		released++
		u.metrics.ReleasedBookings.Inc()
		if err := u.slotCache.InvalidateConsultant(ctx, b.ConsultantID()); err != nil {
			slog.Warn("failed to invalidate slot cache after reclaim",
				"consultant_id", b.ConsultantID(), "error", err.Error())
		}
		u.mirror.UnmirrorBooking(ctx, b)
	}
	return released, nil
}

func (u *releaseUseCaseImpl) releaseOne(ctx context.Context, b *booking.Booking, now time.Time) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := b.Release(); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		if b.RedemptionID() != nil {
			if err := refundRedemption(ctx, tx, b, now); err != nil {
				return err
			}
		}
		return enqueueStatusEvent(ctx, tx, b, "released", now)
	})
}

func (u *releaseUseCaseImpl) ForceRelease(ctx context.Context, bookingID uuid.UUID, reason string) error {
	now := u.clock.Now()
	var b *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		b = found

		if err := b.Cancel(); err != nil {
			return ErrBookingNotCancelable
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		if b.RedemptionID() != nil {
			if err := refundRedemption(ctx, tx, b, now); err != nil {
				return err
			}
		}
		slog.Info("booking force-released",
			"booking_id", bookingID, "reason", reason)
		return enqueueStatusEvent(ctx, tx, b, "cancelled", now)
	})
	if err != nil {
		return err
	}

	if err := u.slotCache.InvalidateConsultant(ctx, b.ConsultantID()); err != nil {
		slog.Warn("failed to invalidate slot cache after force release",
			"consultant_id", b.ConsultantID(), "error", err.Error())
	}
	u.mirror.UnmirrorBooking(ctx, b)
	return nil
}

func (u *releaseUseCaseImpl) CancelBooking(ctx context.Context, bookingID, clientID uuid.UUID) error {
	now := u.clock.Now()
	var b *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		b = found

		if b.ClientID() != clientID {
			return ErrBookingNotFound
		}
		if b.Interval().Start().Before(now.Add(u.cfg.CancelCutoff)) {
			return ErrCancelCutoffPassed
		}
		if err := b.Cancel(); err != nil {
			return ErrBookingNotCancelable
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		if b.RedemptionID() != nil {
			if err := refundRedemption(ctx, tx, b, now); err != nil {
				return err
			}
		}
		return enqueueStatusEvent(ctx, tx, b, "cancelled", now)
	})
	if err != nil {
		return err
	}

	if err := u.slotCache.InvalidateConsultant(ctx, b.ConsultantID()); err != nil {
		slog.Warn("failed to invalidate slot cache after cancellation",
			"consultant_id", b.ConsultantID(), "error", err.Error())
	}
	u.mirror.UnmirrorBooking(ctx, b)
	return nil
}

// refundRedemption releases the booking's redemption and gives the use
// back to the coupon. MarkReleased reports uuid.Nil on a repeat
// release, so the refund happens at most once.
func refundRedemption(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	couponID, err := tx.Redemptions().MarkReleased(ctx, *b.RedemptionID(), now)
	if err != nil || couponID == uuid.Nil {
		return err
	}
	return tx.Coupons().DecrementUsage(ctx, couponID)
}

func enqueueStatusEvent(ctx context.Context, tx shared.Tx, b *booking.Booking, event string, now time.Time) error {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID:    b.ID(),
		ConsultantID: b.ConsultantID(),
		ClientID:     b.ClientID(),
		Event:        event,
		Start:        b.Interval().Start(),
		End:          b.Interval().End(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "booking", event, payload, now)
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"consultbook/internal/domain/booking"
	"consultbook/internal/infra"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/usecase/shared"
)

// PaymentOutcome is what the payment provider's webhook reports.
type PaymentOutcome string

const (
	PaymentSucceeded PaymentOutcome = "succeeded"
	PaymentFailed    PaymentOutcome = "failed"
)

type PaymentCommands interface {
	// HandlePaymentResult drives pending_payment to confirmed or
	// released from the provider webhook.
	HandlePaymentResult(ctx context.Context, paymentRef string, outcome PaymentOutcome) error
}

type paymentUseCaseImpl struct {
	uow       shared.UnitOfWork
	slotCache *cache.SlotCache
	mirror    shared.CalendarMirror
	metrics   *metrics.Metrics
	clock     clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, slotCache *cache.SlotCache, mirror shared.CalendarMirror, m *metrics.Metrics, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, slotCache: slotCache, mirror: mirror, metrics: m, clock: clk}
}

// HandlePaymentResult resolves the timeout race in favor of the
// earliest transition: a confirmation arriving after the reclaimer
// already released the booking is refused with a reconciliation error
// routed to manual review, never a silent resurrect. Money must not be
// kept against a released slot.
func (u *paymentUseCaseImpl) HandlePaymentResult(ctx context.Context, paymentRef string, outcome PaymentOutcome) error {
	var b *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reads().BookingByPaymentRef(ctx, paymentRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		b = found

		switch outcome {
		case PaymentSucceeded:
			if err := b.ConfirmPayment(); err != nil {
				if errors.Is(err, booking.ErrNotPendingPayment) {
					slog.Error("late payment confirmation against non-pending booking",
						"booking_id", b.ID(),
						"status", b.Status().String(),
						"payment_ref", paymentRef)
					return ErrPaymentReconcile
				}
				return err
			}
		case PaymentFailed:
			if err := b.Release(); err != nil {
				if errors.Is(err, booking.ErrNotPendingPayment) {
					// The reclaimer or an admin got there first; the
					// failure outcome is already satisfied.
					return nil
				}
				return err
			}
		default:
			return ErrPaymentReconcile
		}

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		if b.Status() == booking.StatusReleased && b.RedemptionID() != nil {
			if err := refundRedemption(ctx, tx, b, u.clock.Now()); err != nil {
				return err
			}
		}
		event := "confirmed"
		if b.Status() == booking.StatusReleased {
			event = "released"
		}
		return enqueueStatusEvent(ctx, tx, b, event, u.clock.Now())
	})
	if err != nil {
		return err
	}

	if b.Status() == booking.StatusReleased {
		if err := u.slotCache.InvalidateConsultant(ctx, b.ConsultantID()); err != nil {
			slog.Warn("failed to invalidate slot cache after release",
				"consultant_id", b.ConsultantID(), "error", err.Error())
		}
		u.mirror.UnmirrorBooking(ctx, b)
	}
	return nil
}

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/coupon"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/infra"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/pkg/identity"
	"consultbook/internal/usecase/coupons"
	"consultbook/internal/usecase/schedule"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound      = errs.New("service type not found")
	ErrSlotConflict         = errs.New("slot is no longer available")
	ErrDailyLimitReached    = errs.New("consultant daily booking limit reached")
	ErrLeadTimeNotMet       = errs.New("slot starts before the minimum lead time")
	ErrInvalidSlot          = errs.New("invalid slot interval")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrCouponExhausted      = errs.New("coupon usage limit reached")
	ErrPaymentReconcile     = errs.New("payment outcome conflicts with booking state")
	ErrCancelCutoffPassed   = errs.New("cancellation cutoff has passed")
	ErrBookingNotCancelable = errs.New("booking cannot be cancelled in its current state")
)

// SlotConflictError wraps ErrSlotConflict with the first overlapping
// busy entry, so callers can say what took the slot.
type SlotConflictError struct {
	Report *schedule.ConflictReport
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot conflict with %s", e.Report.Overlap.Source)
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }

type CommitBookingInput struct {
	ConsultantID uuid.UUID
	ClientID     uuid.UUID
	Start        time.Time
	ServiceType  string
	CouponCode   *string
	Client       identity.ClientIdentity
}

// CommitBookingResult returns the created booking and the reference the
// caller hands to the payment provider.
type CommitBookingResult struct {
	Booking    *booking.Booking
	PaymentRef string
	FinalPrice int64
	Discounted bool
}

type BookingCommands interface {
	CommitBooking(ctx context.Context, input CommitBookingInput) (*CommitBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	resolver  *schedule.Resolver
	validator *coupons.Validator
	slotCache *cache.SlotCache
	mirror    shared.CalendarMirror
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       config.SchedulingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	resolver *schedule.Resolver,
	validator *coupons.Validator,
	slotCache *cache.SlotCache,
	mirror shared.CalendarMirror,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.SchedulingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		resolver:  resolver,
		validator: validator,
		slotCache: slotCache,
		mirror:    mirror,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
	}
}

// CommitBooking is the write path: re-check the slot against live
// state, validate the coupon, and insert booking plus redemption as one
// atomic unit. The whole sequence runs under the consultant's advisory
// lock so two overlapping attempts serialize and the loser gets a
// SlotConflict instead of a double booking.
func (u *bookingUseCaseImpl) CommitBooking(ctx context.Context, input CommitBookingInput) (*CommitBookingResult, error) {
	now := u.clock.Now()

	// A rejected attempt still counts toward the fraud attempt rates,
	// so it is recorded outside the commit transaction, keyed the same
	// way the validator reads it back.
	if input.CouponCode != nil {
		if err := u.recordCouponAttempt(ctx, coupon.NormalizeCode(*input.CouponCode), input.Client.RateKey(), now); err != nil {
			slog.Warn("failed to record coupon attempt", "error", err.Error())
		}
	}

	var result *CommitBookingResult
	err := u.uow.WithinConsultant(ctx, input.ConsultantID, func(ctx context.Context, tx shared.Tx) error {
		committed, err := u.commitInTx(ctx, tx, input, now)
		if err != nil {
			return err
		}
		result = committed
		return nil
	})
	if err != nil {
		u.metrics.BookingCommits.WithLabelValues(commitOutcome(err)).Inc()
		return nil, err
	}

	u.metrics.BookingCommits.WithLabelValues("success").Inc()
	if err := u.slotCache.InvalidateConsultant(ctx, input.ConsultantID); err != nil {
		slog.Warn("failed to invalidate slot cache after commit",
			"consultant_id", input.ConsultantID, "error", err.Error())
	}
	u.mirror.MirrorBooking(ctx, result.Booking)
	return result, nil
}

func (u *bookingUseCaseImpl) commitInTx(ctx context.Context, tx shared.Tx, input CommitBookingInput, now time.Time) (*CommitBookingResult, error) {
	reads := tx.Reads()

	service, err := reads.ServiceByType(ctx, input.ServiceType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	candidate, err := timeline.NewInterval(input.Start, input.Start.Add(service.Duration))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	// The margin covers the consultant-local day plus buffers, so the
	// daily limit and the busy timeline both see everything relevant.
	snap, err := schedule.LoadSnapshot(ctx, reads, input.ConsultantID,
		candidate.Start().Add(-24*time.Hour), candidate.End().Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	// Same day-granular lead rule the slot generator applies, so every
	// offered slot passes here and everything earlier is refused.
	if candidate.Start().Before(schedule.EarliestBookableStart(now, u.cfg.LeadTime, snap.Template.Location())) {
		return nil, ErrLeadTimeNotMet
	}

	if report := u.resolver.DetectConflict(snap, candidate, now); report != nil {
		return nil, &SlotConflictError{Report: report}
	}
	if u.dailyLimitReached(snap, candidate) {
		return nil, ErrDailyLimitReached
	}

	finalPrice := service.BasePriceCents
	var redemptionID *uuid.UUID
	var adjustment *coupons.PriceAdjustment

	if input.CouponCode != nil {
		adjustment, err = u.validator.Validate(ctx, reads, *input.CouponCode,
			input.ConsultantID, input.ServiceType, service.BasePriceCents, input.Client)
		if err != nil {
			return nil, err
		}
		finalPrice = adjustment.FinalCents

		id := uuid.New()
		redemptionID = &id
		if err := tx.Coupons().IncrementUsage(ctx, adjustment.CouponID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrCouponExhausted
			}
			return nil, err
		}
		if err := tx.Redemptions().Create(ctx, shared.RedemptionRecord{
			ID:           id,
			CouponID:     adjustment.CouponID,
			IdentityHash: input.Client.Hash,
			RiskScore:    adjustment.RiskScore,
			CreatedAt:    now,
		}); err != nil {
			return nil, err
		}
	}

	price, err := booking.NewMoney(finalPrice)
	if err != nil {
		return nil, err
	}
	b := booking.NewBooking(input.ConsultantID, input.ClientID, candidate, input.ServiceType, price, redemptionID)

	paymentRef := uuid.NewString()
	err = tx.Bookings().Create(ctx, b, snap.Template.BufferBefore(), snap.Template.BufferAfter(), paymentRef)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// The exclusion constraint is the storage backstop; losing
			// here means a writer slipped past the advisory lock scope.
			return nil, &SlotConflictError{Report: &schedule.ConflictReport{
				Candidate: candidate,
				Overlap:   timeline.BusyInterval{Interval: candidate, Source: timeline.SourceBooking},
			}}
		}
		return nil, err
	}

	if redemptionID != nil {
		if err := tx.Redemptions().BindBooking(ctx, *redemptionID, b.ID()); err != nil {
			return nil, err
		}
	}

	if err := u.enqueueBookingEvent(ctx, tx, b, "created", now); err != nil {
		return nil, err
	}

	return &CommitBookingResult{
		Booking:    b,
		PaymentRef: paymentRef,
		FinalPrice: finalPrice,
		Discounted: adjustment != nil,
	}, nil
}

func (u *bookingUseCaseImpl) dailyLimitReached(snap *schedule.Snapshot, candidate timeline.Interval) bool {
	maxPerDay := snap.Template.MaxPerDay()
	if maxPerDay <= 0 {
		return false
	}
	loc := snap.Template.Location()
	y, m, d := candidate.Start().In(loc).Date()
	count := 0
	for _, b := range snap.Bookings {
		by, bm, bd := b.Start.In(loc).Date()
		if by == y && bm == m && bd == d {
			count++
		}
	}
	return count >= maxPerDay
}

func (u *bookingUseCaseImpl) recordCouponAttempt(ctx context.Context, code, rateKey string, at time.Time) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().RecordAttempt(ctx, code, rateKey, at)
	})
}

type bookingEventPayload struct {
	BookingID    uuid.UUID `json:"booking_id"`
	ConsultantID uuid.UUID `json:"consultant_id"`
	ClientID     uuid.UUID `json:"client_id"`
	Event        string    `json:"event"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

// enqueueBookingEvent writes the outbox job in the same transaction;
// the notification service itself is fire-and-forget and can never roll
// a booking back.
func (u *bookingUseCaseImpl) enqueueBookingEvent(ctx context.Context, tx shared.Tx, b *booking.Booking, event string, now time.Time) error {
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

func commitOutcome(err error) string {
	switch {
	case errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrDailyLimitReached):
		return "slot_conflict"
	case errors.Is(err, coupons.ErrCouponInvalid) || errors.Is(err, ErrCouponExhausted):
		return "coupon_invalid"
	case isFraudSuspected(err):
		return "fraud_suspected"
	case errors.Is(err, ErrLeadTimeNotMet) || errors.Is(err, ErrInvalidSlot) || errors.Is(err, ErrServiceNotFound):
		return "validation"
	default:
		return "error"
	}
}

func isFraudSuspected(err error) bool {
	var fraud *coupons.FraudSuspectedError
	return errors.As(err, &fraud)
}

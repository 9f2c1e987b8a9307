//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/infra/cache"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/shared"
	sharedmock "consultbook/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var paymentNow = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

type paymentFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockScheduleReads
	bookings      *sharedmock.MockBookingRepository
	redemptions   *sharedmock.MockRedemptionRepository
	coupons       *sharedmock.MockCouponRepository
	notifications *sharedmock.MockNotificationRepository
	mirror        *sharedmock.MockCalendarMirror
	usecase       commands.PaymentCommands
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	slotCache := cache.NewSlotCache(client, config.RedisConfig{SlotTTL: time.Minute})

	f := &paymentFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockScheduleReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		redemptions:   sharedmock.NewMockRedemptionRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		mirror:        sharedmock.NewMockCalendarMirror(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Redemptions().Return(f.redemptions).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()

	f.usecase = commands.NewPaymentUseCase(
		f.uow, slotCache, f.mirror,
		metrics.New(prometheus.NewRegistry()),
		clock.NewMockClock(paymentNow),
	)
	return f
}

func reconstructBooking(t *testing.T, status booking.Status, redemptionID *uuid.UUID) *booking.Booking {
	t.Helper()
	price, err := booking.NewMoney(5000)
	require.NoError(t, err)
	start := paymentNow.AddDate(0, 0, 2)
	return booking.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(),
		timeline.MustInterval(start, start.Add(30*time.Minute)),
		"initial_consultation", status, redemptionID, price,
		paymentNow.Add(-time.Hour), paymentNow.Add(-time.Hour), 1,
	)
}

func TestHandlePaymentResult(t *testing.T) {
	t.Run("success confirms a pending booking", func(t *testing.T) {
		f := newPaymentFixture(t)
		b := reconstructBooking(t, booking.StatusPendingPayment, nil)

		f.reads.EXPECT().BookingByPaymentRef(gomock.Any(), "ref-1").Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).Return(nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), "booking", "confirmed", gomock.Any(), paymentNow).Return(nil)

		err := f.usecase.HandlePaymentResult(context.Background(), "ref-1", commands.PaymentSucceeded)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("late confirmation after release is refused for reconciliation", func(t *testing.T) {
		f := newPaymentFixture(t)
		// the timeout reclaimer already released this booking
		b := reconstructBooking(t, booking.StatusReleased, nil)

		f.reads.EXPECT().BookingByPaymentRef(gomock.Any(), "ref-2").Return(b, nil)

		err := f.usecase.HandlePaymentResult(context.Background(), "ref-2", commands.PaymentSucceeded)
		assert.ErrorIs(t, err, commands.ErrPaymentReconcile)
		assert.Equal(t, booking.StatusReleased, b.Status())
	})

	t.Run("failure after release is an idempotent no-op", func(t *testing.T) {
		f := newPaymentFixture(t)
		b := reconstructBooking(t, booking.StatusReleased, nil)

		f.reads.EXPECT().BookingByPaymentRef(gomock.Any(), "ref-3").Return(b, nil)
		f.mirror.EXPECT().UnmirrorBooking(gomock.Any(), b)

		err := f.usecase.HandlePaymentResult(context.Background(), "ref-3", commands.PaymentFailed)
		require.NoError(t, err)
	})

	t.Run("failure releases and refunds the redemption once", func(t *testing.T) {
		f := newPaymentFixture(t)
		redemptionID := uuid.New()
		couponID := uuid.New()
		b := reconstructBooking(t, booking.StatusPendingPayment, &redemptionID)

		f.reads.EXPECT().BookingByPaymentRef(gomock.Any(), "ref-4").Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).Return(nil)
		f.redemptions.EXPECT().MarkReleased(gomock.Any(), redemptionID, paymentNow).Return(couponID, nil)
		f.coupons.EXPECT().DecrementUsage(gomock.Any(), couponID).Return(nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), "booking", "released", gomock.Any(), paymentNow).Return(nil)
		f.mirror.EXPECT().UnmirrorBooking(gomock.Any(), b)

		err := f.usecase.HandlePaymentResult(context.Background(), "ref-4", commands.PaymentFailed)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusReleased, b.Status())
	})

	t.Run("already refunded redemption is not decremented again", func(t *testing.T) {
		f := newPaymentFixture(t)
		redemptionID := uuid.New()
		b := reconstructBooking(t, booking.StatusPendingPayment, &redemptionID)

		f.reads.EXPECT().BookingByPaymentRef(gomock.Any(), "ref-5").Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b).Return(nil)
		f.redemptions.EXPECT().MarkReleased(gomock.Any(), redemptionID, paymentNow).Return(uuid.Nil, nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), "booking", "released", gomock.Any(), paymentNow).Return(nil)
		f.mirror.EXPECT().UnmirrorBooking(gomock.Any(), b)

		err := f.usecase.HandlePaymentResult(context.Background(), "ref-5", commands.PaymentFailed)
		require.NoError(t, err)
	})
}

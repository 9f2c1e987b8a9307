//go:build unit

package booking_test

import (
	"testing"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *booking.Booking {
	t.Helper()
	iv := timeline.MustInterval(
		time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC),
	)
	price, err := booking.NewMoney(5000)
	require.NoError(t, err)
	return booking.NewBooking(uuid.New(), uuid.New(), iv, "initial_consultation", price, nil)
}

func TestNewMoney(t *testing.T) {
	t.Run("zero OK", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("negative NG", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestBookingLifecycle(t *testing.T) {
	t.Run("new booking starts pending_payment", func(t *testing.T) {
		b := newPending(t)
		assert.Equal(t, booking.StatusPendingPayment, b.Status())
		assert.True(t, b.Status().BlocksSlot())
	})

	t.Run("confirm from pending", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.ConfirmPayment())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("late payment cannot resurrect a released booking", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Release())
		err := b.ConfirmPayment()
		assert.ErrorIs(t, err, booking.ErrNotPendingPayment)
		assert.Equal(t, booking.StatusReleased, b.Status())
	})

	t.Run("release only from pending", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.ConfirmPayment())
		assert.ErrorIs(t, b.Release(), booking.ErrNotPendingPayment)
	})

	t.Run("cancel works on pending and confirmed", func(t *testing.T) {
		pending := newPending(t)
		require.NoError(t, pending.Cancel())
		assert.Equal(t, booking.StatusCancelled, pending.Status())

		confirmed := newPending(t)
		require.NoError(t, confirmed.ConfirmPayment())
		require.NoError(t, confirmed.Cancel())
		assert.Equal(t, booking.StatusCancelled, confirmed.Status())
	})

	t.Run("cancel refused in terminal status", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyFinal)
	})

	t.Run("complete and no_show require confirmed", func(t *testing.T) {
		b := newPending(t)
		assert.ErrorIs(t, b.Complete(), booking.ErrNotConfirmed)
		assert.ErrorIs(t, b.MarkNoShow(), booking.ErrNotConfirmed)

		require.NoError(t, b.ConfirmPayment())
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.Status().BlocksSlot())
	})

	t.Run("reschedule requires confirmed and frees the slot", func(t *testing.T) {
		b := newPending(t)
		assert.ErrorIs(t, b.MarkRescheduled(), booking.ErrNotConfirmed)

		require.NoError(t, b.ConfirmPayment())
		require.NoError(t, b.MarkRescheduled())
		assert.Equal(t, booking.StatusRescheduled, b.Status())
		assert.False(t, b.Status().BlocksSlot())
	})
}

func TestStatus(t *testing.T) {
	blocking := map[booking.Status]bool{
		booking.StatusPendingPayment: true,
		booking.StatusConfirmed:      true,
		booking.StatusCancelled:      false,
		booking.StatusCompleted:      false,
		booking.StatusNoShow:         false,
		booking.StatusRescheduled:    false,
		booking.StatusReleased:       false,
	}
	for st, want := range blocking {
		assert.True(t, st.IsValid(), st)
		assert.Equal(t, want, st.BlocksSlot(), st)
	}
	assert.False(t, booking.Status("unknown").IsValid())
}

func TestPendingSince(t *testing.T) {
	created := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	b := booking.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(),
		timeline.MustInterval(created.Add(24*time.Hour), created.Add(25*time.Hour)),
		"initial_consultation", booking.StatusPendingPayment, nil,
		booking.Money{}, created, created, 1,
	)

	assert.False(t, b.PendingSince(created.Add(10*time.Minute), 15*time.Minute))
	assert.True(t, b.PendingSince(created.Add(16*time.Minute), 15*time.Minute))

	require.NoError(t, b.ConfirmPayment())
	assert.False(t, b.PendingSince(created.Add(time.Hour), 15*time.Minute))
}

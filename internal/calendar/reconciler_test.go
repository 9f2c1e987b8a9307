//go:build unit

package calendar_test

import (
	"context"
	"testing"
	"time"

	"consultbook/internal/calendar"
	"consultbook/internal/usecase/shared"
	sharedmock "consultbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	tx     *sharedmock.MockTx
	reads  *sharedmock.MockScheduleReads
	events *sharedmock.MockExternalEventRepository
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &reconcilerFixture{
		tx:     sharedmock.NewMockTx(ctrl),
		reads:  sharedmock.NewMockScheduleReads(ctrl),
		events: sharedmock.NewMockExternalEventRepository(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().ExternalEvents().Return(f.events).AnyTimes()
	return f
}

func TestReconcile(t *testing.T) {
	consultantID := uuid.New()
	windowStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 21)
	syncedAt := time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC)
	prevSync := syncedAt.Add(-5 * time.Minute)

	busy := func(hour int) (time.Time, time.Time) {
		start := windowStart.Add(time.Duration(hour) * time.Hour)
		return start, start.Add(time.Hour)
	}

	t.Run("diff applies the minimal mutation set", func(t *testing.T) {
		f := newReconcilerFixture(t)

		keptStart, keptEnd := busy(9)
		movedStart, movedEnd := busy(11)
		goneStart, goneEnd := busy(15)
		f.reads.EXPECT().ExternalBusyIn(gomock.Any(), consultantID, windowStart, windowEnd).
			Return([]shared.ExternalBusySnapshot{
				{Platform: "google", SourceEventID: "kept", Start: keptStart, End: keptEnd, LastSyncedAt: prevSync},
				{Platform: "google", SourceEventID: "moved", Start: movedStart, End: movedEnd, LastSyncedAt: prevSync},
				{Platform: "google", SourceEventID: "gone", Start: goneStart, End: goneEnd, LastSyncedAt: prevSync},
				// other platform rows never count as this platform's mirror
				{Platform: "outlook", SourceEventID: "kept", Start: keptStart, End: keptEnd, LastSyncedAt: prevSync},
			}, nil)

		newStart, newEnd := busy(13)
		fetched := []calendar.BusyEvent{
			{SourceEventID: "kept", Start: keptStart, End: keptEnd},
			{SourceEventID: "moved", Start: movedStart.Add(30 * time.Minute), End: movedEnd.Add(30 * time.Minute)},
			{SourceEventID: "new", Start: newStart, End: newEnd},
		}

		f.events.EXPECT().Insert(gomock.Any(), shared.ExternalEventRecord{
			ConsultantID:  consultantID,
			Platform:      "google",
			SourceEventID: "new",
			Start:         newStart,
			End:           newEnd,
			SyncedAt:      syncedAt,
		}).Return(nil)
		f.events.EXPECT().UpdateInterval(gomock.Any(), consultantID, "google", "moved",
			movedStart.Add(30*time.Minute), movedEnd.Add(30*time.Minute), syncedAt).Return(nil)
		f.events.EXPECT().TouchSynced(gomock.Any(), consultantID, "google", []string{"kept"}, syncedAt).Return(nil)
		f.events.EXPECT().DeleteMissing(gomock.Any(), consultantID, "google", []string{"kept", "moved", "new"}).
			Return(int64(1), nil)

		result, err := calendar.Reconcile(context.Background(), f.tx, consultantID, calendar.PlatformGoogle, fetched, windowStart, windowEnd, syncedAt)
		require.NoError(t, err)
		assert.Equal(t, calendar.SyncResult{Added: 1, Updated: 1, Removed: 1}, result)
	})

	t.Run("unchanged fetch is a no-op pass", func(t *testing.T) {
		f := newReconcilerFixture(t)

		start, end := busy(9)
		f.reads.EXPECT().ExternalBusyIn(gomock.Any(), consultantID, windowStart, windowEnd).
			Return([]shared.ExternalBusySnapshot{
				{Platform: "google", SourceEventID: "kept", Start: start, End: end, LastSyncedAt: prevSync},
			}, nil)

		f.events.EXPECT().TouchSynced(gomock.Any(), consultantID, "google", []string{"kept"}, syncedAt).Return(nil)
		f.events.EXPECT().DeleteMissing(gomock.Any(), consultantID, "google", []string{"kept"}).
			Return(int64(0), nil)

		result, err := calendar.Reconcile(context.Background(), f.tx, consultantID, calendar.PlatformGoogle,
			[]calendar.BusyEvent{{SourceEventID: "kept", Start: start, End: end}}, windowStart, windowEnd, syncedAt)
		require.NoError(t, err)
		assert.Equal(t, calendar.SyncResult{}, result)
	})

	t.Run("empty fetch removes every mirrored row", func(t *testing.T) {
		f := newReconcilerFixture(t)

		start, end := busy(9)
		f.reads.EXPECT().ExternalBusyIn(gomock.Any(), consultantID, windowStart, windowEnd).
			Return([]shared.ExternalBusySnapshot{
				{Platform: "google", SourceEventID: "gone", Start: start, End: end, LastSyncedAt: prevSync},
			}, nil)

		f.events.EXPECT().TouchSynced(gomock.Any(), consultantID, "google", nil, syncedAt).Return(nil)
		f.events.EXPECT().DeleteMissing(gomock.Any(), consultantID, "google", []string{}).
			Return(int64(1), nil)

		result, err := calendar.Reconcile(context.Background(), f.tx, consultantID, calendar.PlatformGoogle,
			nil, windowStart, windowEnd, syncedAt)
		require.NoError(t, err)
		assert.Equal(t, calendar.SyncResult{Removed: 1}, result)
	})
}

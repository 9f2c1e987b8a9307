//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"consultbook/internal/domain/availability"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/schedule"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mondays only, 09:00-17:00 UTC. 2026-09-07 is a Monday.
func mondayTemplate(t *testing.T, bufferBefore, bufferAfter time.Duration) *availability.Template {
	t.Helper()
	windows := map[time.Weekday][]availability.LocalWindow{
		time.Monday: {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
	}
	tpl, err := availability.NewTemplate(
		uuid.New(), uuid.New(), windows, "UTC",
		bufferBefore, bufferAfter, 0, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return tpl
}

func newResolver() *schedule.Resolver {
	return schedule.NewResolver(config.CalendarConfig{
		SyncInterval:          5 * time.Minute,
		StaleAfterCycles:      2,
		DegradedAfterFailures: 3,
	})
}

func monday(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
}

func TestBusyTimeline(t *testing.T) {
	now := monday(8, 0)

	t.Run("booking intervals carry buffer expansion", func(t *testing.T) {
		snap := &schedule.Snapshot{
			Template: mondayTemplate(t, 10*time.Minute, 5*time.Minute),
			Bookings: []shared.BookingBusySnapshot{
				{ID: uuid.New(), Start: monday(10, 0), End: monday(10, 30)},
			},
		}
		busy, notices := newResolver().BusyTimeline(snap, now)
		require.Len(t, busy, 1)
		assert.Equal(t, monday(9, 50), busy[0].Interval.Start())
		assert.Equal(t, monday(10, 35), busy[0].Interval.End())
		assert.Equal(t, timeline.SourceBooking, busy[0].Source)
		assert.Empty(t, notices)
	})

	t.Run("stale external intervals drop out with a notice", func(t *testing.T) {
		snap := &schedule.Snapshot{
			Template: mondayTemplate(t, 0, 0),
			External: []shared.ExternalBusySnapshot{
				{
					Platform: "google", SourceEventID: "fresh",
					Start: monday(10, 0), End: monday(10, 30),
					LastSyncedAt: now.Add(-5 * time.Minute),
				},
				{
					// 2 cycles x 5m threshold exceeded
					Platform: "google", SourceEventID: "stale",
					Start: monday(11, 0), End: monday(11, 30),
					LastSyncedAt: now.Add(-15 * time.Minute),
				},
			},
		}
		busy, notices := newResolver().BusyTimeline(snap, now)
		require.Len(t, busy, 1)
		assert.Equal(t, "google/fresh", busy[0].Ref)

		require.Len(t, notices, 1)
		assert.Equal(t, schedule.NoticeStaleExternal, notices[0].Kind)
		assert.Equal(t, 1, notices[0].Count)
	})

	t.Run("degraded platform emits a notice without blocking", func(t *testing.T) {
		snap := &schedule.Snapshot{
			Template: mondayTemplate(t, 0, 0),
			Health: []shared.PlatformHealth{
				{Platform: "google", ConsecutiveFailures: 2},
				{Platform: "outlook", ConsecutiveFailures: 3},
			},
		}
		busy, notices := newResolver().BusyTimeline(snap, now)
		assert.Empty(t, busy)

		require.Len(t, notices, 1)
		assert.Equal(t, schedule.NoticeSyncDegraded, notices[0].Kind)
		assert.Equal(t, "outlook", notices[0].Platform)
		assert.Equal(t, 3, notices[0].Count)
	})

	t.Run("blocked exceptions join the timeline, opened ones do not", func(t *testing.T) {
		blocked, err := availability.NewException(
			uuid.New(), uuid.New(),
			timeline.MustInterval(monday(13, 0), monday(14, 0)),
			availability.ExceptionBlocked, "dentist",
		)
		require.NoError(t, err)
		opened, err := availability.NewException(
			uuid.New(), uuid.New(),
			timeline.MustInterval(monday(18, 0), monday(20, 0)),
			availability.ExceptionOpened, "evening session",
		)
		require.NoError(t, err)

		snap := &schedule.Snapshot{
			Template:   mondayTemplate(t, 0, 0),
			Exceptions: []*availability.Exception{blocked, opened},
		}
		busy, _ := newResolver().BusyTimeline(snap, now)
		require.Len(t, busy, 1)
		assert.Equal(t, timeline.SourceException, busy[0].Source)
		assert.Equal(t, "dentist", busy[0].Ref)
	})
}

func TestDetectConflict(t *testing.T) {
	now := monday(8, 0)
	r := newResolver()

	t.Run("slot outside working hours", func(t *testing.T) {
		snap := &schedule.Snapshot{Template: mondayTemplate(t, 0, 0)}
		report := r.DetectConflict(snap, timeline.MustInterval(monday(7, 0), monday(7, 30)), now)
		require.NotNil(t, report)
		assert.Equal(t, timeline.SourceOutsideHours, report.Overlap.Source)
	})

	t.Run("opened exception admits an off-hours slot", func(t *testing.T) {
		opened, err := availability.NewException(
			uuid.New(), uuid.New(),
			timeline.MustInterval(monday(18, 0), monday(20, 0)),
			availability.ExceptionOpened, "evening session",
		)
		require.NoError(t, err)
		snap := &schedule.Snapshot{
			Template:   mondayTemplate(t, 0, 0),
			Exceptions: []*availability.Exception{opened},
		}
		assert.Nil(t, r.DetectConflict(snap, timeline.MustInterval(monday(18, 30), monday(19, 0)), now))
	})

	t.Run("buffered candidate collides with adjacent booking", func(t *testing.T) {
		bookingID := uuid.New()
		snap := &schedule.Snapshot{
			Template: mondayTemplate(t, 10*time.Minute, 10*time.Minute),
			Bookings: []shared.BookingBusySnapshot{
				{ID: bookingID, Start: monday(10, 0), End: monday(10, 30)},
			},
		}
		// 10:45 start leaves only 15m after the booking; two 10m buffers collide
		report := r.DetectConflict(snap, timeline.MustInterval(monday(10, 45), monday(11, 15)), now)
		require.NotNil(t, report)
		assert.Equal(t, timeline.SourceBooking, report.Overlap.Source)
		assert.Equal(t, bookingID.String(), report.Overlap.Ref)

		// a full hour of clearance is fine
		assert.Nil(t, r.DetectConflict(snap, timeline.MustInterval(monday(11, 30), monday(12, 0)), now))
	})

	t.Run("clean slot inside hours", func(t *testing.T) {
		snap := &schedule.Snapshot{Template: mondayTemplate(t, 0, 0)}
		assert.Nil(t, r.DetectConflict(snap, timeline.MustInterval(monday(9, 0), monday(9, 30)), now))
	})
}

func TestEarliestBookableStart(t *testing.T) {
	utc := time.UTC
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, utc)

	cases := []struct {
		name string
		now  time.Time
		lead time.Duration
		want time.Time
	}{
		{
			"midnight with one day lead lands on the next day",
			sunday, 24 * time.Hour,
			sunday.AddDate(0, 0, 1),
		},
		{
			"mid-afternoon keeps the whole next day bookable",
			sunday.Add(11 * time.Hour), 24 * time.Hour,
			sunday.AddDate(0, 0, 1),
		},
		{
			"late evening keeps the whole next day bookable",
			sunday.Add(23 * time.Hour), 24 * time.Hour,
			sunday.AddDate(0, 0, 1),
		},
		{
			"zero lead still excludes the current day",
			sunday.Add(11 * time.Hour), 0,
			sunday.AddDate(0, 0, 1),
		},
		{
			"two day lead skips a day",
			sunday.Add(11 * time.Hour), 48 * time.Hour,
			sunday.AddDate(0, 0, 2),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.EarliestBookableStart(tc.now, tc.lead, utc)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("day boundary follows the consultant's zone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		// Sunday 20:00 UTC is already Monday in Tokyo, so a one day
		// lead opens Tuesday there.
		got := schedule.EarliestBookableStart(sunday.Add(20*time.Hour), 24*time.Hour, tokyo)
		assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, tokyo), got)
	})
}

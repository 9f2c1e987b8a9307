//go:build unit

package availability_test

import (
	"testing"
	"time"

	"consultbook/internal/domain/availability"
	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayTemplate(t *testing.T, timezone string) *availability.Template {
	t.Helper()
	windows := map[time.Weekday][]availability.LocalWindow{
		time.Monday:    {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
		time.Tuesday:   {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
		time.Wednesday: {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
		time.Thursday:  {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
		time.Friday:    {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
	}
	tpl, err := availability.NewTemplate(
		uuid.New(), uuid.New(), windows, timezone,
		0, 0, 0, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return tpl
}

func TestNewTemplate(t *testing.T) {
	t.Run("unknown timezone NG", func(t *testing.T) {
		_, err := availability.NewTemplate(uuid.New(), uuid.New(), nil, "Mars/Olympus", 0, 0, 0, time.Time{})
		assert.ErrorIs(t, err, availability.ErrUnknownTimezone)
	})

	t.Run("negative buffer NG", func(t *testing.T) {
		_, err := availability.NewTemplate(uuid.New(), uuid.New(), nil, "UTC", -time.Minute, 0, 0, time.Time{})
		assert.ErrorIs(t, err, availability.ErrNegativeBuffer)
	})

	t.Run("window open after close NG", func(t *testing.T) {
		windows := map[time.Weekday][]availability.LocalWindow{
			time.Monday: {{OpenMin: 17 * 60, CloseMin: 9 * 60}},
		}
		_, err := availability.NewTemplate(uuid.New(), uuid.New(), windows, "UTC", 0, 0, 0, time.Time{})
		assert.ErrorIs(t, err, availability.ErrWindowOrder)
	})

	t.Run("overlapping windows on one weekday NG", func(t *testing.T) {
		windows := map[time.Weekday][]availability.LocalWindow{
			time.Monday: {
				{OpenMin: 9 * 60, CloseMin: 13 * 60},
				{OpenMin: 12 * 60, CloseMin: 17 * 60},
			},
		}
		_, err := availability.NewTemplate(uuid.New(), uuid.New(), windows, "UTC", 0, 0, 0, time.Time{})
		assert.ErrorIs(t, err, availability.ErrWindowsOverlap)
	})
}

func TestWindowsOn(t *testing.T) {
	tpl := weekdayTemplate(t, "America/New_York")
	loc := tpl.Location()

	t.Run("weekday projects local wall time", func(t *testing.T) {
		// 2026-09-07 is a Monday
		got := tpl.WindowsOn(2026, time.September, 7)
		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, loc), got[0].Start())
		assert.Equal(t, time.Date(2026, 9, 7, 17, 0, 0, 0, loc), got[0].End())
	})

	t.Run("weekend has no windows", func(t *testing.T) {
		// 2026-09-05 is a Saturday
		assert.Empty(t, tpl.WindowsOn(2026, time.September, 5))
	})
}

func TestCoversSlot(t *testing.T) {
	tpl := weekdayTemplate(t, "UTC")
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC) // Monday
	}

	cases := []struct {
		name      string
		candidate timeline.Interval
		want      bool
	}{
		{"inside window", timeline.MustInterval(day(10, 0), day(10, 30)), true},
		{"flush against open", timeline.MustInterval(day(9, 0), day(9, 30)), true},
		{"flush against close", timeline.MustInterval(day(16, 30), day(17, 0)), true},
		{"starts before open", timeline.MustInterval(day(8, 30), day(9, 30)), false},
		{"runs past close", timeline.MustInterval(day(16, 45), day(17, 15)), false},
		{
			"weekend day",
			timeline.MustInterval(
				time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 5, 10, 30, 0, 0, time.UTC),
			),
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tpl.CoversSlot(tc.candidate))
		})
	}
}

func TestException(t *testing.T) {
	consultantID := uuid.New()
	iv := timeline.MustInterval(
		time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 14, 0, 0, 0, time.UTC),
	)

	t.Run("invalid kind NG", func(t *testing.T) {
		_, err := availability.NewException(uuid.New(), consultantID, iv, "closed", "")
		assert.ErrorIs(t, err, availability.ErrInvalidExceptionKind)
	})

	t.Run("opened exception admits fully covered slot", func(t *testing.T) {
		ex, err := availability.NewException(uuid.New(), consultantID, iv, availability.ExceptionOpened, "weekend session")
		require.NoError(t, err)

		inside := timeline.MustInterval(
			time.Date(2026, 9, 5, 11, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 11, 30, 0, 0, time.UTC),
		)
		straddling := timeline.MustInterval(
			time.Date(2026, 9, 5, 13, 45, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 14, 15, 0, 0, time.UTC),
		)
		assert.True(t, ex.OpensSlot(inside))
		assert.False(t, ex.OpensSlot(straddling))
		assert.False(t, ex.BlocksSlot(inside))
	})

	t.Run("blocked exception vetoes any intersection", func(t *testing.T) {
		ex, err := availability.NewException(uuid.New(), consultantID, iv, availability.ExceptionBlocked, "vacation")
		require.NoError(t, err)

		touching := timeline.MustInterval(
			time.Date(2026, 9, 5, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		)
		overlapping := timeline.MustInterval(
			time.Date(2026, 9, 5, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 10, 30, 0, 0, time.UTC),
		)
		assert.False(t, ex.BlocksSlot(touching))
		assert.True(t, ex.BlocksSlot(overlapping))
		assert.False(t, ex.OpensSlot(overlapping))
	})
}

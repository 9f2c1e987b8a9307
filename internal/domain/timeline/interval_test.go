//go:build unit

package timeline_test

import (
	"testing"
	"time"

	"consultbook/internal/domain/timeline"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	t.Run("start before end OK", func(t *testing.T) {
		iv, err := timeline.NewInterval(at(10, 0), at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, at(10, 0), iv.Start())
		assert.Equal(t, at(11, 0), iv.End())
		assert.Equal(t, time.Hour, iv.Duration())
	})

	t.Run("start equal end NG", func(t *testing.T) {
		_, err := timeline.NewInterval(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, timeline.ErrInvalidInterval)
	})

	t.Run("start after end NG", func(t *testing.T) {
		_, err := timeline.NewInterval(at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, timeline.ErrInvalidInterval)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b timeline.Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    timeline.MustInterval(at(10, 0), at(11, 0)),
			b:    timeline.MustInterval(at(10, 30), at(11, 30)),
			want: true,
		},
		{
			name: "containment",
			a:    timeline.MustInterval(at(9, 0), at(17, 0)),
			b:    timeline.MustInterval(at(10, 0), at(10, 30)),
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    timeline.MustInterval(at(10, 0), at(11, 0)),
			b:    timeline.MustInterval(at(11, 0), at(12, 0)),
			want: false,
		},
		{
			name: "disjoint",
			a:    timeline.MustInterval(at(10, 0), at(11, 0)),
			b:    timeline.MustInterval(at(14, 0), at(15, 0)),
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalExpand(t *testing.T) {
	iv := timeline.MustInterval(at(10, 0), at(10, 30))
	got := iv.Expand(15*time.Minute, 10*time.Minute)
	assert.Equal(t, at(9, 45), got.Start())
	assert.Equal(t, at(10, 40), got.End())

	t.Run("zero padding is identity", func(t *testing.T) {
		assert.Equal(t, iv, iv.Expand(0, 0))
	})
}

func TestMerge(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, timeline.Merge(nil))
	})

	t.Run("overlapping intervals coalesce", func(t *testing.T) {
		busy := []timeline.BusyInterval{
			{Interval: timeline.MustInterval(at(10, 0), at(11, 0)), Source: timeline.SourceBooking, Ref: "a"},
			{Interval: timeline.MustInterval(at(10, 30), at(12, 0)), Source: timeline.SourceExternal, Ref: "b"},
			{Interval: timeline.MustInterval(at(14, 0), at(15, 0)), Source: timeline.SourceException, Ref: "c"},
		}
		got := timeline.Merge(busy)
		require.Len(t, got, 2)
		assert.Equal(t, at(10, 0), got[0].Interval.Start())
		assert.Equal(t, at(12, 0), got[0].Interval.End())
		// earliest contributor wins the merged entry
		assert.Equal(t, timeline.SourceBooking, got[0].Source)
		assert.Equal(t, at(14, 0), got[1].Interval.Start())
	})

	t.Run("adjacent intervals coalesce", func(t *testing.T) {
		busy := []timeline.BusyInterval{
			{Interval: timeline.MustInterval(at(10, 0), at(11, 0))},
			{Interval: timeline.MustInterval(at(11, 0), at(12, 0))},
		}
		got := timeline.Merge(busy)
		require.Len(t, got, 1)
		assert.Equal(t, at(10, 0), got[0].Interval.Start())
		assert.Equal(t, at(12, 0), got[0].Interval.End())
	})

	t.Run("unsorted input does not mutate the original", func(t *testing.T) {
		busy := []timeline.BusyInterval{
			{Interval: timeline.MustInterval(at(14, 0), at(15, 0))},
			{Interval: timeline.MustInterval(at(10, 0), at(11, 0))},
		}
		before := make([]timeline.BusyInterval, len(busy))
		copy(before, busy)

		got := timeline.Merge(busy)
		require.Len(t, got, 2)
		assert.Equal(t, at(10, 0), got[0].Interval.Start())

		if diff := cmp.Diff(before, busy, cmp.AllowUnexported(timeline.Interval{})); diff != "" {
			t.Errorf("input mutated (-want +got):\n%s", diff)
		}
	})
}

func TestFirstOverlap(t *testing.T) {
	busy := timeline.Merge([]timeline.BusyInterval{
		{Interval: timeline.MustInterval(at(10, 0), at(10, 30)), Source: timeline.SourceExternal, Ref: "ev1"},
		{Interval: timeline.MustInterval(at(14, 0), at(15, 0)), Source: timeline.SourceBooking, Ref: "b1"},
	})

	t.Run("hit reports the colliding entry", func(t *testing.T) {
		hit := timeline.FirstOverlap(busy, timeline.MustInterval(at(10, 15), at(10, 45)))
		require.NotNil(t, hit)
		assert.Equal(t, timeline.SourceExternal, hit.Source)
		assert.Equal(t, "ev1", hit.Ref)
	})

	t.Run("free slot between entries", func(t *testing.T) {
		assert.Nil(t, timeline.FirstOverlap(busy, timeline.MustInterval(at(11, 0), at(11, 30))))
	})

	t.Run("candidate ending exactly at busy start is free", func(t *testing.T) {
		assert.Nil(t, timeline.FirstOverlap(busy, timeline.MustInterval(at(13, 0), at(14, 0))))
	})
}

func TestSubtract(t *testing.T) {
	base := timeline.MustInterval(at(9, 0), at(17, 0))

	t.Run("no windows returns base", func(t *testing.T) {
		got := timeline.Subtract(base, nil)
		require.Len(t, got, 1)
		assert.Equal(t, base, got[0])
	})

	t.Run("middle window splits base", func(t *testing.T) {
		got := timeline.Subtract(base, []timeline.Interval{
			timeline.MustInterval(at(12, 0), at(13, 0)),
		})
		require.Len(t, got, 2)
		assert.Equal(t, at(9, 0), got[0].Start())
		assert.Equal(t, at(12, 0), got[0].End())
		assert.Equal(t, at(13, 0), got[1].Start())
		assert.Equal(t, at(17, 0), got[1].End())
	})

	t.Run("window covering base leaves nothing", func(t *testing.T) {
		got := timeline.Subtract(base, []timeline.Interval{
			timeline.MustInterval(at(8, 0), at(18, 0)),
		})
		assert.Empty(t, got)
	})
}

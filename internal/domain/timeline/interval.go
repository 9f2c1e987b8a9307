package timeline

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is a half-open time range [Start, End).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval panics on an invalid range. Only for constants and tests.
func MustInterval(start, end time.Time) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) Start() time.Time        { return iv.start }
func (iv Interval) End() time.Time          { return iv.end }
func (iv Interval) Duration() time.Duration { return iv.end.Sub(iv.start) }
func (iv Interval) IsZero() bool            { return iv.start.IsZero() && iv.end.IsZero() }

// Overlaps reports whether two half-open intervals share any instant.
// Touching boundaries ([a,b) and [b,c)) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (iv Interval) Contains(other Interval) bool {
	return !other.start.Before(iv.start) && !other.end.After(iv.end)
}

// Expand grows the interval by before/after padding. Used to apply
// consultant buffer rules ahead of overlap checks.
func (iv Interval) Expand(before, after time.Duration) Interval {
	return Interval{
		start: iv.start.Add(-before),
		end:   iv.end.Add(after),
	}
}

func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

func (iv Interval) String() string {
	return iv.start.Format(time.RFC3339) + "/" + iv.end.Format(time.RFC3339)
}

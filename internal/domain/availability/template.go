package availability

import (
	"errors"
	"time"

	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
)

var (
	ErrWindowOrder     = errors.New("window open must be before close")
	ErrWindowsOverlap  = errors.New("windows for a weekday must not overlap")
	ErrUnknownTimezone = errors.New("unknown timezone identifier")
	ErrNegativeBuffer  = errors.New("buffer durations cannot be negative")
)

// LocalWindow is a recurring working window in consultant-local wall
// time, expressed as minutes from midnight. [OpenMin, CloseMin).
type LocalWindow struct {
	OpenMin  int
	CloseMin int
}

// Template is the versioned weekly working-hours template of one
// consultant. A new schedule supersedes the old one via EffectiveFrom;
// old versions are kept so past bookings stay interpretable.
type Template struct {
	id            uuid.UUID
	consultantID  uuid.UUID
	windows       map[time.Weekday][]LocalWindow
	location      *time.Location
	timezone      string
	bufferBefore  time.Duration
	bufferAfter   time.Duration
	maxPerDay     int
	effectiveFrom time.Time
}

func NewTemplate(
	id, consultantID uuid.UUID,
	windows map[time.Weekday][]LocalWindow,
	timezone string,
	bufferBefore, bufferAfter time.Duration,
	maxPerDay int,
	effectiveFrom time.Time,
) (*Template, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrUnknownTimezone
	}
	if bufferBefore < 0 || bufferAfter < 0 {
		return nil, ErrNegativeBuffer
	}
	for _, day := range windows {
		for i, w := range day {
			if w.OpenMin >= w.CloseMin {
				return nil, ErrWindowOrder
			}
			if i > 0 && w.OpenMin < day[i-1].CloseMin {
				return nil, ErrWindowsOverlap
			}
		}
	}
	return &Template{
		id:            id,
		consultantID:  consultantID,
		windows:       windows,
		location:      loc,
		timezone:      timezone,
		bufferBefore:  bufferBefore,
		bufferAfter:   bufferAfter,
		maxPerDay:     maxPerDay,
		effectiveFrom: effectiveFrom,
	}, nil
}

func (t *Template) ID() uuid.UUID               { return t.id }
func (t *Template) ConsultantID() uuid.UUID     { return t.consultantID }
func (t *Template) Timezone() string            { return t.timezone }
func (t *Template) Location() *time.Location    { return t.location }
func (t *Template) BufferBefore() time.Duration { return t.bufferBefore }
func (t *Template) BufferAfter() time.Duration  { return t.bufferAfter }
func (t *Template) MaxPerDay() int              { return t.maxPerDay }
func (t *Template) EffectiveFrom() time.Time    { return t.effectiveFrom }

// WindowsOn projects the recurring windows for one calendar day onto
// absolute instants in the consultant's timezone.
func (t *Template) WindowsOn(year int, month time.Month, day int) []timeline.Interval {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.location)
	local := t.windows[midnight.Weekday()]
	out := make([]timeline.Interval, 0, len(local))
	for _, w := range local {
		iv, err := timeline.NewInterval(
			midnight.Add(time.Duration(w.OpenMin)*time.Minute),
			midnight.Add(time.Duration(w.CloseMin)*time.Minute),
		)
		if err != nil {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// CoversSlot reports whether candidate falls entirely inside one of the
// day's working windows. A slot running past the window close is not
// covered, even if it starts inside.
func (t *Template) CoversSlot(candidate timeline.Interval) bool {
	start := candidate.Start().In(t.location)
	for _, w := range t.WindowsOn(start.Date()) {
		if w.Contains(candidate) {
			return true
		}
	}
	return false
}

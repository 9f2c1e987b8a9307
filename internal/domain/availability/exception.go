package availability

import (
	"errors"

	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
)

// ExceptionKind tells whether an exception removes or adds availability.
type ExceptionKind string

const (
	// ExceptionBlocked removes time from the schedule (holiday, vacation,
	// ad-hoc block). Takes precedence over the recurring template.
	ExceptionBlocked ExceptionKind = "blocked"
	// ExceptionOpened adds time outside the recurring template (ad-hoc
	// opening).
	ExceptionOpened ExceptionKind = "opened"
)

var ErrInvalidExceptionKind = errors.New("exception kind must be blocked or opened")

func (k ExceptionKind) IsValid() bool {
	return k == ExceptionBlocked || k == ExceptionOpened
}

// Exception is a one-off override of the recurring template for a date
// range.
type Exception struct {
	id           uuid.UUID
	consultantID uuid.UUID
	interval     timeline.Interval
	kind         ExceptionKind
	reason       string
}

func NewException(id, consultantID uuid.UUID, interval timeline.Interval, kind ExceptionKind, reason string) (*Exception, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidExceptionKind
	}
	return &Exception{
		id:           id,
		consultantID: consultantID,
		interval:     interval,
		kind:         kind,
		reason:       reason,
	}, nil
}

func (e *Exception) ID() uuid.UUID               { return e.id }
func (e *Exception) ConsultantID() uuid.UUID     { return e.consultantID }
func (e *Exception) Interval() timeline.Interval { return e.interval }
func (e *Exception) Kind() ExceptionKind         { return e.kind }
func (e *Exception) Reason() string              { return e.reason }

// OpensSlot reports whether an opened exception fully covers candidate.
func (e *Exception) OpensSlot(candidate timeline.Interval) bool {
	return e.kind == ExceptionOpened && e.interval.Contains(candidate)
}

// BlocksSlot reports whether a blocked exception intersects candidate.
func (e *Exception) BlocksSlot(candidate timeline.Interval) bool {
	return e.kind == ExceptionBlocked && e.interval.Overlaps(candidate)
}

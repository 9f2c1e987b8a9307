package shared

import (
	"time"

	"consultbook/internal/domain/availability"
	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
)

// TemplateSnapshot is the stored form of one availability template
// version; ToDomain rebuilds the validated domain object.
type TemplateSnapshot struct {
	ID            uuid.UUID
	ConsultantID  uuid.UUID
	Timezone      string
	Windows       map[time.Weekday][]availability.LocalWindow
	BufferBefore  time.Duration
	BufferAfter   time.Duration
	MaxPerDay     int
	EffectiveFrom time.Time
}

func (s *TemplateSnapshot) ToDomain() (*availability.Template, error) {
	return availability.NewTemplate(
		s.ID, s.ConsultantID, s.Windows, s.Timezone,
		s.BufferBefore, s.BufferAfter, s.MaxPerDay, s.EffectiveFrom,
	)
}

type ExceptionSnapshot struct {
	ID           uuid.UUID
	ConsultantID uuid.UUID
	Start        time.Time
	End          time.Time
	Kind         availability.ExceptionKind
	Reason       string
}

func (s ExceptionSnapshot) ToDomain() (*availability.Exception, error) {
	iv, err := timeline.NewInterval(s.Start, s.End)
	if err != nil {
		return nil, err
	}
	return availability.NewException(s.ID, s.ConsultantID, iv, s.Kind, s.Reason)
}

// BookingBusySnapshot carries just what the busy timeline needs from an
// active booking.
type BookingBusySnapshot struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
}

type ExternalBusySnapshot struct {
	Platform      string
	SourceEventID string
	Start         time.Time
	End           time.Time
	LastSyncedAt  time.Time
}

// PlatformHealth summarizes the sync state of one external calendar
// platform for a consultant.
type PlatformHealth struct {
	Platform            string
	LastSuccessAt       *time.Time
	ConsecutiveFailures int
}

type ServiceSnapshot struct {
	Type           string
	Duration       time.Duration
	BasePriceCents int64
}

func (s *ServiceSnapshot) ToDomain() booking.Service {
	return booking.Service{
		Type:           s.Type,
		Duration:       s.Duration,
		BasePriceCents: s.BasePriceCents,
	}
}

// BookingView is the read model returned to API callers.
type BookingView struct {
	ID           uuid.UUID
	ConsultantID uuid.UUID
	ClientID     uuid.UUID
	Start        time.Time
	End          time.Time
	ServiceType  string
	Status       string
	PriceCents   int64
	CouponCode   *string
	CreatedAt    time.Time
}

type ExternalAccountSnapshot struct {
	ID           uuid.UUID
	ConsultantID uuid.UUID
	Platform     string
	AccountRef   string
}

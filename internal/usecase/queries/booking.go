package queries

import (
	"context"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/infra"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingStatusView is the status projection exposed on the public
// status endpoint.
type BookingStatusView struct {
	ID          uuid.UUID
	Status      string
	Start       time.Time
	End         time.Time
	ServiceType string
	PriceCents  int64
}

type BookingQueries interface {
	GetBookingStatus(ctx context.Context, bookingID uuid.UUID) (*BookingStatusView, error)
	ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]shared.BookingView, error)
	GetConsultantAgenda(ctx context.Context, consultantID uuid.UUID, day time.Time) ([]shared.BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetBookingStatus(ctx context.Context, bookingID uuid.UUID) (*BookingStatusView, error) {
	b, err := q.uow.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return statusView(b), nil
}

func statusView(b *booking.Booking) *BookingStatusView {
	return &BookingStatusView{
		ID:          b.ID(),
		Status:      b.Status().String(),
		Start:       b.Interval().Start(),
		End:         b.Interval().End(),
		ServiceType: b.ServiceType(),
		PriceCents:  b.FinalPrice().Cents(),
	}
}

func (q *bookingQueriesImpl) ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]shared.BookingView, error) {
	return q.uow.Reads().BookingsByClient(ctx, clientID)
}

func (q *bookingQueriesImpl) GetConsultantAgenda(ctx context.Context, consultantID uuid.UUID, day time.Time) ([]shared.BookingView, error) {
	return q.uow.Reads().ConsultantAgenda(ctx, consultantID, day)
}

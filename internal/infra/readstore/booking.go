package readstore

import (
	"context"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/infra"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var bookingColumns = []string{
	"id", "consultant_id", "client_id", "starts_at", "ends_at",
	"service_type", "status", "coupon_redemption_id",
	"final_price_cents", "created_at", "updated_at", "version",
}

func (s *ScheduleReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}
	return s.scanOneBooking(ctx, query, args)
}

func (s *ScheduleReadStore) BookingByPaymentRef(ctx context.Context, paymentRef string) (*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_ref": paymentRef}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}
	return s.scanOneBooking(ctx, query, args)
}

func (s *ScheduleReadStore) scanOneBooking(ctx context.Context, query string, args []any) (*booking.Booking, error) {
	var (
		id, consultantID, clientID uuid.UUID
		startsAt, endsAt           time.Time
		serviceType, status        string
		redemptionID               *uuid.UUID
		priceCents                 int64
		createdAt, updatedAt       time.Time
		version                    int64
	)
	row := s.db.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&id, &consultantID, &clientID, &startsAt, &endsAt,
		&serviceType, &status, &redemptionID,
		&priceCents, &createdAt, &updatedAt, &version,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	iv, err := timeline.NewInterval(startsAt, endsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking interval is invalid", err, infra.KindIntegrity)
	}
	price, err := booking.NewMoney(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking price is invalid", err, infra.KindIntegrity)
	}

	return booking.Reconstruct(
		id, consultantID, clientID, iv, serviceType,
		booking.Status(status), redemptionID, price,
		createdAt, updatedAt, version,
	), nil
}

var bookingViewColumns = []string{
	"b.id", "b.consultant_id", "b.client_id", "b.starts_at", "b.ends_at",
	"b.service_type", "b.status", "b.final_price_cents", "c.code", "b.created_at",
}

// BookingsByClient lists a client's bookings newest first, with the
// redeemed coupon code joined in when one was applied.
func (s *ScheduleReadStore) BookingsByClient(ctx context.Context, clientID uuid.UUID) ([]shared.BookingView, error) {
	query, args, err := psql.Select(bookingViewColumns...).
		From("bookings b").
		LeftJoin("coupon_redemptions cr ON cr.id = b.coupon_redemption_id").
		LeftJoin("coupons c ON c.id = cr.coupon_id").
		Where(squirrel.Eq{"b.client_id": clientID}).
		OrderBy("b.starts_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build client bookings query", err)
	}
	return s.scanBookingViews(ctx, query, args)
}

// ConsultantAgenda lists the consultant's bookings for one calendar day
// in chronological order. The day boundary follows the caller's instant
// plus 24 hours; timezone projection happens at the presentation layer.
func (s *ScheduleReadStore) ConsultantAgenda(ctx context.Context, consultantID uuid.UUID, day time.Time) ([]shared.BookingView, error) {
	dayEnd := day.Add(24 * time.Hour)
	query, args, err := psql.Select(bookingViewColumns...).
		From("bookings b").
		LeftJoin("coupon_redemptions cr ON cr.id = b.coupon_redemption_id").
		LeftJoin("coupons c ON c.id = cr.coupon_id").
		Where(squirrel.Eq{"b.consultant_id": consultantID}).
		Where(squirrel.Lt{"b.starts_at": dayEnd}).
		Where(squirrel.GtOrEq{"b.ends_at": day}).
		OrderBy("b.starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build consultant agenda query", err)
	}
	return s.scanBookingViews(ctx, query, args)
}

func (s *ScheduleReadStore) scanBookingViews(ctx context.Context, query string, args []any) ([]shared.BookingView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking views", err)
	}
	defer rows.Close()

	var out []shared.BookingView
	for rows.Next() {
		var v shared.BookingView
		if err := rows.Scan(
			&v.ID, &v.ConsultantID, &v.ClientID, &v.Start, &v.End,
			&v.ServiceType, &v.Status, &v.PriceCents, &v.CouponCode, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

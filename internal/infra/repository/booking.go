package repository

import (
	"context"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/infra"
	"consultbook/internal/infra/db"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

// Create inserts the booking row. slot_range is the buffer-expanded
// interval; the exclusion constraint on it is the storage-level defense
// against overlapping active bookings racing past the coordinator.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, bufferBefore, bufferAfter time.Duration, paymentRef string) error {
	buffered := b.Interval().Expand(bufferBefore, bufferAfter)

	query, args, err := psql.Insert("bookings").
		Columns(
			"id", "consultant_id", "client_id",
			"starts_at", "ends_at", "slot_range",
			"service_type", "status", "coupon_redemption_id",
			"final_price_cents", "payment_ref", "version",
		).
		Values(
			b.ID(), b.ConsultantID(), b.ClientID(),
			b.Interval().Start(), b.Interval().End(),
			squirrel.Expr("tstzrange(?, ?, '[)')", buffered.Start(), buffered.End()),
			b.ServiceType(), b.Status().String(), b.RedemptionID(),
			b.FinalPrice().Cents(), paymentRef, 1,
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsExclusionViolation(err) {
			return infra.WrapRepoErr("booking slot overlaps an active booking", err, infra.KindConflict)
		}
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate booking id", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

// UpdateStatus persists a transition guarded by the optimistic version
// column. Zero rows affected means another writer got there first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Update("bookings").
		Set("status", b.Status().String()).
		Set("version", b.Version()+1).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID(), "version": b.Version()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) FindExpiredPending(ctx context.Context, olderThan time.Time, limit int32) ([]*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": booking.StatusPendingPayment.String()}).
		Where(squirrel.Lt{"created_at": olderThan}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build expired pending query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expired pending bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired pending booking", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var bookingColumns = []string{
	"id", "consultant_id", "client_id", "starts_at", "ends_at",
	"service_type", "status", "coupon_redemption_id",
	"final_price_cents", "created_at", "updated_at", "version",
}

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingRow) (*booking.Booking, error) {
	var (
		id, consultantID, clientID uuid.UUID
		startsAt, endsAt           time.Time
		serviceType, status        string
		redemptionID               *uuid.UUID
		priceCents                 int64
		createdAt, updatedAt       time.Time
		version                    int64
	)
	if err := row.Scan(
		&id, &consultantID, &clientID, &startsAt, &endsAt,
		&serviceType, &status, &redemptionID,
		&priceCents, &createdAt, &updatedAt, &version,
	); err != nil {
		return nil, err
	}

	iv, err := timeline.NewInterval(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, consultantID, clientID, iv, serviceType,
		booking.Status(status), redemptionID, price,
		createdAt, updatedAt, version,
	), nil
}

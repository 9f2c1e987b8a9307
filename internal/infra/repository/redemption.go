package repository

import (
	"context"
	"time"

	"consultbook/internal/infra"
	"consultbook/internal/infra/db"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

var _ shared.RedemptionRepository = (*RedemptionRepository)(nil)

func (r *RedemptionRepository) Create(ctx context.Context, rec shared.RedemptionRecord) error {
	query, args, err := psql.Insert("coupon_redemptions").
		Columns("id", "coupon_id", "identity_hash", "booking_id", "risk_score", "created_at").
		Values(rec.ID, rec.CouponID, rec.IdentityHash, rec.BookingID, rec.RiskScore, rec.CreatedAt).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build redemption insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("redemption references missing coupon or booking", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert redemption", err)
	}
	return nil
}

// BindBooking sets the booking reference once the booking row exists.
// Redemption and booking are written in the same transaction; the
// one-directional reference keeps the graph acyclic.
func (r *RedemptionRepository) BindBooking(ctx context.Context, redemptionID, bookingID uuid.UUID) error {
	query, args, err := psql.Update("coupon_redemptions").
		Set("booking_id", bookingID).
		Where(squirrel.Eq{"id": redemptionID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build redemption booking bind", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to bind redemption to booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("redemption not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkReleased stamps the redemption released and reports which coupon
// to refund. The released_at guard makes a double release return
// uuid.Nil, so the caller refunds usage only once; the row itself stays
// for the fraud history.
func (r *RedemptionRepository) MarkReleased(ctx context.Context, redemptionID uuid.UUID, at time.Time) (uuid.UUID, error) {
	query, args, err := psql.Update("coupon_redemptions").
		Set("released_at", at).
		Where(squirrel.Eq{"id": redemptionID}).
		Where(squirrel.Eq{"released_at": nil}).
		Suffix("RETURNING coupon_id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build redemption release", err)
	}

	var couponID uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&couponID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, nil
		}
		return uuid.Nil, infra.WrapRepoErr("failed to mark redemption released", err)
	}
	return couponID, nil
}

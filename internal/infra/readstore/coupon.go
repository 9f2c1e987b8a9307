package readstore

import (
	"context"
	"time"

	"consultbook/internal/domain/coupon"
	"consultbook/internal/infra"
	"consultbook/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (s *ScheduleReadStore) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	query, args, err := psql.Select(
		"id", "code", "discount_type", "discount_value", "max_discount_cents",
		"max_uses_total", "max_uses_per_user", "min_order_cents",
		"valid_from", "valid_to", "service_type", "consultant_id",
		"uses_count", "active",
	).
		From("coupons").
		Where(squirrel.Eq{"code": coupon.NormalizeCode(code)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build coupon query", err)
	}

	var (
		id                   uuid.UUID
		storedCode           string
		discountType         string
		discountValue        int64
		maxDiscountCents     *int64
		maxTotal, maxPerUser int32
		minOrderCents        int64
		validFrom, validTo   *time.Time
		serviceType          *string
		consultantID         *uuid.UUID
		usesCount            int32
		active               bool
	)
	row := s.db.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&id, &storedCode, &discountType, &discountValue, &maxDiscountCents,
		&maxTotal, &maxPerUser, &minOrderCents,
		&validFrom, &validTo, &serviceType, &consultantID,
		&usesCount, &active,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load coupon", err)
	}

	c, err := coupon.New(
		id, storedCode, coupon.DiscountType(discountType), discountValue,
		maxDiscountCents, maxTotal, maxPerUser, minOrderCents,
		validFrom, validTo, serviceType, consultantID, usesCount, active,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon definition is invalid", err, infra.KindIntegrity)
	}
	return c, nil
}

// CouponUserUses counts redemptions for one identity that were not
// later released, so refunded usage does not count against the per-user
// limit.
func (s *ScheduleReadStore) CouponUserUses(ctx context.Context, couponID uuid.UUID, identityHash string) (int32, error) {
	query, args, err := psql.Select("count(*)").
		From("coupon_redemptions").
		Where(squirrel.Eq{
			"coupon_id":     couponID,
			"identity_hash": identityHash,
			"released_at":   nil,
		}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build coupon user uses query", err)
	}

	var count int32
	if err := s.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon user uses", err)
	}
	return count, nil
}

// CouponAttemptCounts returns how many validation attempts this
// identity made since the window start, for this code and across all
// codes. Both feed the fraud score.
func (s *ScheduleReadStore) CouponAttemptCounts(ctx context.Context, code, identityHash string, since time.Time) (perCode, allCodes int, err error) {
	const query = `
		SELECT count(*) FILTER (WHERE code = $1), count(*)
		FROM coupon_attempts
		WHERE identity_hash = $2 AND created_at >= $3`

	row := s.db.QueryRow(ctx, query, coupon.NormalizeCode(code), identityHash, since)
	if err := row.Scan(&perCode, &allCodes); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count coupon attempts", err)
	}
	return perCode, allCodes, nil
}

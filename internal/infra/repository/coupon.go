package repository

import (
	"context"
	"time"

	"consultbook/internal/infra"
	"consultbook/internal/infra/db"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

var _ shared.CouponRepository = (*CouponRepository)(nil)

// IncrementUsage bumps uses_count with the total-limit check inside the
// UPDATE itself, so two racing redemptions cannot both take the last
// use. Zero rows affected means the coupon is exhausted.
func (r *CouponRepository) IncrementUsage(ctx context.Context, couponID uuid.UUID) error {
	query, args, err := psql.Update("coupons").
		Set("uses_count", squirrel.Expr("uses_count + 1")).
		Where(squirrel.Eq{"id": couponID}).
		Where(squirrel.Expr("(max_uses_total = 0 OR uses_count < max_uses_total)")).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build coupon usage increment", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon usage limit reached", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) DecrementUsage(ctx context.Context, couponID uuid.UUID) error {
	query, args, err := psql.Update("coupons").
		Set("uses_count", squirrel.Expr("greatest(uses_count - 1, 0)")).
		Where(squirrel.Eq{"id": couponID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build coupon usage decrement", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to decrement coupon usage", err)
	}
	return nil
}

// RecordAttempt logs every validation attempt, successful or not; the
// fraud heuristics read attempt rates from this table.
func (r *CouponRepository) RecordAttempt(ctx context.Context, code, identityHash string, at time.Time) error {
	query, args, err := psql.Insert("coupon_attempts").
		Columns("code", "identity_hash", "created_at").
		Values(code, identityHash, at).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build coupon attempt insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to record coupon attempt", err)
	}
	return nil
}

//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"consultbook/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func percentCoupon(t *testing.T, value int64, maxDiscount *int64) *coupon.Coupon {
	t.Helper()
	c, err := coupon.New(
		uuid.New(), "SPRING30", coupon.DiscountPercentage, value, maxDiscount,
		0, 0, 0, nil, nil, nil, nil, 0, true,
	)
	require.NoError(t, err)
	return c
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "spring30", coupon.NormalizeCode("  SPRING30 "))
	assert.Equal(t, "spring30", coupon.NormalizeCode("spring30"))
}

func TestNew(t *testing.T) {
	t.Run("code is normalized on construction", func(t *testing.T) {
		c := percentCoupon(t, 30, nil)
		assert.Equal(t, "spring30", c.Code())
	})

	t.Run("unknown discount type NG", func(t *testing.T) {
		_, err := coupon.New(uuid.New(), "x", coupon.DiscountType("bogo"), 1, nil, 0, 0, 0, nil, nil, nil, nil, 0, true)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)
	})

	t.Run("percentage outside 0..100 NG", func(t *testing.T) {
		_, err := coupon.New(uuid.New(), "x", coupon.DiscountPercentage, 130, nil, 0, 0, 0, nil, nil, nil, nil, 0, true)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)
	})

	t.Run("negative fixed amount NG", func(t *testing.T) {
		_, err := coupon.New(uuid.New(), "x", coupon.DiscountFixedAmount, -500, nil, 0, 0, 0, nil, nil, nil, nil, 0, true)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)
	})
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	consultantID := uuid.New()
	otherConsultant := uuid.New()

	build := func(t *testing.T, mutate func(args *couponArgs)) *coupon.Coupon {
		t.Helper()
		args := &couponArgs{
			discountType:  coupon.DiscountPercentage,
			discountValue: 10,
			active:        true,
		}
		if mutate != nil {
			mutate(args)
		}
		c, err := coupon.New(
			uuid.New(), "promo", args.discountType, args.discountValue, nil,
			args.maxUsesTotal, args.maxUsesPerUser, args.minOrderCents,
			args.validFrom, args.validTo, args.serviceType, args.consultantID,
			args.usesCount, args.active,
		)
		require.NoError(t, err)
		return c
	}

	cases := []struct {
		name        string
		mutate      func(args *couponArgs)
		perUserUses int32
		wantErr     error
	}{
		{
			name:    "inactive",
			mutate:  func(a *couponArgs) { a.active = false },
			wantErr: coupon.ErrInactive,
		},
		{
			name:    "not yet valid",
			mutate:  func(a *couponArgs) { a.validFrom = ptr(now.Add(time.Hour)) },
			wantErr: coupon.ErrNotYetValid,
		},
		{
			name:    "expired",
			mutate:  func(a *couponArgs) { a.validTo = ptr(now.Add(-time.Hour)) },
			wantErr: coupon.ErrExpired,
		},
		{
			name:    "wrong service type",
			mutate:  func(a *couponArgs) { a.serviceType = ptr("strategy_session") },
			wantErr: coupon.ErrServiceRestricted,
		},
		{
			name:    "wrong consultant",
			mutate:  func(a *couponArgs) { a.consultantID = &otherConsultant },
			wantErr: coupon.ErrConsultantRestricted,
		},
		{
			name: "global limit reached",
			mutate: func(a *couponArgs) {
				a.maxUsesTotal = 5
				a.usesCount = 5
			},
			wantErr: coupon.ErrExhausted,
		},
		{
			name:        "per-user limit reached",
			mutate:      func(a *couponArgs) { a.maxUsesPerUser = 1 },
			perUserUses: 1,
			wantErr:     coupon.ErrPerUserExhausted,
		},
		{
			name:    "order below minimum",
			mutate:  func(a *couponArgs) { a.minOrderCents = 10000 },
			wantErr: coupon.ErrMinOrderNotMet,
		},
		{
			name:    "eligible",
			wantErr: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := build(t, tc.mutate)
			err := c.CheckEligibility(now, "initial_consultation", consultantID, 3000, tc.perUserUses)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	t.Run("inactive wins over expired", func(t *testing.T) {
		c := build(t, func(a *couponArgs) {
			a.active = false
			a.validTo = ptr(now.Add(-time.Hour))
		})
		err := c.CheckEligibility(now, "initial_consultation", consultantID, 3000, 0)
		assert.ErrorIs(t, err, coupon.ErrInactive)
	})
}

type couponArgs struct {
	discountType   coupon.DiscountType
	discountValue  int64
	maxUsesTotal   int32
	maxUsesPerUser int32
	minOrderCents  int64
	validFrom      *time.Time
	validTo        *time.Time
	serviceType    *string
	consultantID   *uuid.UUID
	usesCount      int32
	active         bool
}

func TestAdjustedPrice(t *testing.T) {
	t.Run("percentage truncates toward zero", func(t *testing.T) {
		c := percentCoupon(t, 30, nil)
		assert.Equal(t, int64(2100), c.AdjustedPrice(3000))
		// 30% of 99 is 29.7, truncated to 29
		assert.Equal(t, int64(70), c.AdjustedPrice(99))
	})

	t.Run("percentage discount is capped", func(t *testing.T) {
		c := percentCoupon(t, 50, ptr(int64(500)))
		assert.Equal(t, int64(2500), c.AdjustedPrice(3000))
	})

	t.Run("fixed amount floors at zero", func(t *testing.T) {
		c, err := coupon.New(uuid.New(), "flat", coupon.DiscountFixedAmount, 2000, nil, 0, 0, 0, nil, nil, nil, nil, 0, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), c.AdjustedPrice(3000))
		assert.Equal(t, int64(0), c.AdjustedPrice(1500))
	})

	t.Run("free session is always zero", func(t *testing.T) {
		c, err := coupon.New(uuid.New(), "free", coupon.DiscountFreeSession, 0, nil, 0, 0, 0, nil, nil, nil, nil, 0, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), c.AdjustedPrice(3000))
	})
}

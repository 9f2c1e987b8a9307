package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive             = errors.New("coupon is not active")
	ErrNotYetValid          = errors.New("coupon is not yet valid")
	ErrExpired              = errors.New("coupon has expired")
	ErrServiceRestricted    = errors.New("coupon does not apply to this service")
	ErrConsultantRestricted = errors.New("coupon does not apply to this consultant")
	ErrExhausted            = errors.New("coupon usage limit reached")
	ErrPerUserExhausted     = errors.New("per-user coupon usage limit reached")
	ErrMinOrderNotMet       = errors.New("order value below coupon minimum")
	ErrInvalidDiscount      = errors.New("invalid discount definition")
)

// DiscountType is the fixed set of supported discount semantics.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
	DiscountFreeSession DiscountType = "free_session"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixedAmount, DiscountFreeSession:
		return true
	default:
		return false
	}
}

// NormalizeCode canonicalizes a user-entered coupon code for lookup.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Coupon is the admin-owned discount definition. The scheduling engine
// reads it and increments its usage count; everything else is mutated
// by the admin collaborator.
type Coupon struct {
	id               uuid.UUID
	code             string
	discountType     DiscountType
	discountValue    int64 // percent for percentage, cents for fixed_amount
	maxDiscountCents *int64
	maxUsesTotal     int32
	maxUsesPerUser   int32
	minOrderCents    int64
	validFrom        *time.Time
	validTo          *time.Time
	serviceType      *string
	consultantID     *uuid.UUID
	usesCount        int32
	active           bool
}

func New(
	id uuid.UUID,
	code string,
	discountType DiscountType,
	discountValue int64,
	maxDiscountCents *int64,
	maxUsesTotal, maxUsesPerUser int32,
	minOrderCents int64,
	validFrom, validTo *time.Time,
	serviceType *string,
	consultantID *uuid.UUID,
	usesCount int32,
	active bool,
) (*Coupon, error) {
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscount
	}
	if discountType == DiscountPercentage && (discountValue < 0 || discountValue > 100) {
		return nil, ErrInvalidDiscount
	}
	if discountType == DiscountFixedAmount && discountValue < 0 {
		return nil, ErrInvalidDiscount
	}
	return &Coupon{
		id:               id,
		code:             NormalizeCode(code),
		discountType:     discountType,
		discountValue:    discountValue,
		maxDiscountCents: maxDiscountCents,
		maxUsesTotal:     maxUsesTotal,
		maxUsesPerUser:   maxUsesPerUser,
		minOrderCents:    minOrderCents,
		validFrom:        validFrom,
		validTo:          validTo,
		serviceType:      serviceType,
		consultantID:     consultantID,
		usesCount:        usesCount,
		active:           active,
	}, nil
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Code() string               { return c.code }
func (c *Coupon) DiscountType() DiscountType { return c.discountType }
func (c *Coupon) UsesCount() int32           { return c.usesCount }
func (c *Coupon) MaxUsesTotal() int32        { return c.maxUsesTotal }
func (c *Coupon) MaxUsesPerUser() int32      { return c.maxUsesPerUser }

// CheckEligibility runs the ordered validity checks. perUserUses is
// supplied by the caller from the redemption history.
func (c *Coupon) CheckEligibility(now time.Time, serviceType string, consultantID uuid.UUID, basePriceCents int64, perUserUses int32) error {
	if !c.active {
		return ErrInactive
	}
	if c.validFrom != nil && now.Before(*c.validFrom) {
		return ErrNotYetValid
	}
	if c.validTo != nil && now.After(*c.validTo) {
		return ErrExpired
	}
	if c.serviceType != nil && *c.serviceType != serviceType {
		return ErrServiceRestricted
	}
	if c.consultantID != nil && *c.consultantID != consultantID {
		return ErrConsultantRestricted
	}
	if c.maxUsesTotal > 0 && c.usesCount >= c.maxUsesTotal {
		return ErrExhausted
	}
	if c.maxUsesPerUser > 0 && perUserUses >= c.maxUsesPerUser {
		return ErrPerUserExhausted
	}
	if basePriceCents < c.minOrderCents {
		return ErrMinOrderNotMet
	}
	return nil
}

// AdjustedPrice computes the discounted price in integer cents.
// percentage multiplies by (100-value)/100 with truncation toward zero
// and an optional cap on the discount amount; fixed_amount subtracts
// flat, floored at zero; free_session forces zero.
func (c *Coupon) AdjustedPrice(basePriceCents int64) int64 {
	switch c.discountType {
	case DiscountPercentage:
		discount := basePriceCents * c.discountValue / 100
		if c.maxDiscountCents != nil && discount > *c.maxDiscountCents {
			discount = *c.maxDiscountCents
		}
		return basePriceCents - discount
	case DiscountFixedAmount:
		remaining := basePriceCents - c.discountValue
		if remaining < 0 {
			return 0
		}
		return remaining
	case DiscountFreeSession:
		return 0
	default:
		return basePriceCents
	}
}

// Package coupons validates coupon codes at commit time: eligibility
// checks, fraud heuristics, and the discounted price.
package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"consultbook/internal/domain/coupon"
	"consultbook/internal/infra"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/clock"
	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/pkg/identity"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrCouponInvalid marks every deterministic rejection: unknown code,
// expired, exhausted, restricted. Not retryable with the same input.
var ErrCouponInvalid = errs.New("coupon invalid")

// FraudSuspectedError is the third outcome. The attempt looked risky
// rather than provably invalid; it is surfaced for review, never
// silently approved or silently rejected.
type FraudSuspectedError struct {
	Code  string
	Score int
}

func (e *FraudSuspectedError) Error() string {
	return fmt.Sprintf("coupon %q flagged for fraud review (risk score %d)", e.Code, e.Score)
}

// PriceAdjustment is the accepted outcome of a validation.
type PriceAdjustment struct {
	CouponID      uuid.UUID
	Code          string
	OriginalCents int64
	FinalCents    int64
	RiskScore     int
}

// Risk score weights. An identity hammering one code or spraying many
// codes is weighted heavier than a merely suspicious email domain, so
// no single weak signal crosses the default threshold alone.
const (
	riskWeightPerCode    = 40
	riskWeightAllCodes   = 40
	riskWeightDisposable = 30
)

type Validator struct {
	cfg     config.CouponConfig
	metrics *metrics.Metrics
	clock   clock.Clock
}

func NewValidator(cfg config.CouponConfig, m *metrics.Metrics, clk clock.Clock) *Validator {
	return &Validator{cfg: cfg, metrics: m, clock: clk}
}

// Validate runs the ordered eligibility checks and the risk heuristics
// for one attempt. The caller records the attempt itself, inside its
// transaction, so a rejected commit still counts toward the rates.
func (v *Validator) Validate(
	ctx context.Context,
	reads shared.ScheduleReads,
	code string,
	consultantID uuid.UUID,
	serviceType string,
	basePriceCents int64,
	client identity.ClientIdentity,
) (*PriceAdjustment, error) {
	adjustment, err := v.validate(ctx, reads, code, consultantID, serviceType, basePriceCents, client)
	v.metrics.CouponValidations.WithLabelValues(validationOutcome(err)).Inc()
	return adjustment, err
}

func validationOutcome(err error) string {
	var fraud *FraudSuspectedError
	switch {
	case err == nil:
		return "valid"
	case errors.As(err, &fraud):
		return "fraud_suspected"
	case errors.Is(err, ErrCouponInvalid):
		return "invalid"
	default:
		return "error"
	}
}

func (v *Validator) validate(
	ctx context.Context,
	reads shared.ScheduleReads,
	code string,
	consultantID uuid.UUID,
	serviceType string,
	basePriceCents int64,
	client identity.ClientIdentity,
) (*PriceAdjustment, error) {
	normalized := coupon.NormalizeCode(code)

	c, err := reads.CouponByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("coupon code %q not found", normalized), ErrCouponInvalid)
		}
		return nil, err
	}

	perUserUses, err := reads.CouponUserUses(ctx, c.ID(), client.Hash)
	if err != nil {
		return nil, err
	}

	now := v.clock.Now()
	if err := c.CheckEligibility(now, serviceType, consultantID, basePriceCents, perUserUses); err != nil {
		return nil, errs.Mark(err, ErrCouponInvalid)
	}

	score, err := v.riskScore(ctx, reads, normalized, client, now)
	if err != nil {
		return nil, err
	}
	if score >= v.cfg.RiskThreshold {
		return nil, &FraudSuspectedError{Code: normalized, Score: score}
	}

	return &PriceAdjustment{
		CouponID:      c.ID(),
		Code:          normalized,
		OriginalCents: basePriceCents,
		FinalCents:    c.AdjustedPrice(basePriceCents),
		RiskScore:     score,
	}, nil
}

func (v *Validator) riskScore(ctx context.Context, reads shared.ScheduleReads, code string, client identity.ClientIdentity, now time.Time) (int, error) {
	perCode, allCodes, err := reads.CouponAttemptCounts(ctx, code, client.RateKey(), now.Add(-v.cfg.AttemptWindow))
	if err != nil {
		return 0, err
	}

	score := 0
	if v.cfg.MaxAttemptsPerCode > 0 && perCode >= v.cfg.MaxAttemptsPerCode {
		score += riskWeightPerCode
	}
	if v.cfg.MaxAttemptsAllCodes > 0 && allCodes >= v.cfg.MaxAttemptsAllCodes {
		score += riskWeightAllCodes
	}
	if v.isDisposableEmail(client.Email) {
		score += riskWeightDisposable
	}
	return score, nil
}

func (v *Validator) isDisposableEmail(email string) bool {
	domain := identity.EmailDomain(email)
	if domain == "" {
		return false
	}
	for _, d := range v.cfg.DisposableEmailDomains {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CommitBookingRequest struct {
	ConsultantID uuid.UUID `json:"consultant_id" binding:"required"`
	ClientID     uuid.UUID `json:"client_id" binding:"required"`
	Start        time.Time `json:"start" binding:"required"`
	ServiceType  string    `json:"service_type" binding:"required"`
	CouponCode   *string   `json:"coupon_code,omitempty"`
	// ClientEmail feeds the coupon fraud heuristics only; it is never
	// persisted.
	ClientEmail string `json:"client_email,omitempty"`
}

func (r CommitBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CancelBookingRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
}

package booking

import (
	"errors"
	"time"

	"consultbook/internal/domain/timeline"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNotPendingPayment = errors.New("booking is not awaiting payment")
	ErrNotConfirmed      = errors.New("booking is not confirmed")
	ErrAlreadyFinal      = errors.New("booking is in a terminal status")
)

// Money is an amount in integer minor currency units (cents). All price
// arithmetic stays in integers to avoid floating-point drift.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

// Service describes one bookable service type: a fixed duration and a
// base price. The catalog itself is configuration owned by the admin
// layer.
type Service struct {
	Type           string
	Duration       time.Duration
	BasePriceCents int64
}

// Booking is the durable commitment of one consultant interval to one
// client.
type Booking struct {
	id           uuid.UUID
	consultantID uuid.UUID
	clientID     uuid.UUID
	interval     timeline.Interval
	serviceType  string
	status       Status
	redemptionID *uuid.UUID
	finalPrice   Money
	createdAt    time.Time
	updatedAt    time.Time
	version      int64
}

func NewBooking(
	consultantID, clientID uuid.UUID,
	interval timeline.Interval,
	serviceType string,
	finalPrice Money,
	redemptionID *uuid.UUID,
) *Booking {
	return &Booking{
		id:           uuid.New(),
		consultantID: consultantID,
		clientID:     clientID,
		interval:     interval,
		serviceType:  serviceType,
		status:       StatusPendingPayment,
		redemptionID: redemptionID,
		finalPrice:   finalPrice,
	}
}

// Reconstruct rebuilds a booking from storage without re-running
// creation invariants.
func Reconstruct(
	id, consultantID, clientID uuid.UUID,
	interval timeline.Interval,
	serviceType string,
	status Status,
	redemptionID *uuid.UUID,
	finalPrice Money,
	createdAt, updatedAt time.Time,
	version int64,
) *Booking {
	return &Booking{
		id:           id,
		consultantID: consultantID,
		clientID:     clientID,
		interval:     interval,
		serviceType:  serviceType,
		status:       status,
		redemptionID: redemptionID,
		finalPrice:   finalPrice,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ConsultantID() uuid.UUID     { return b.consultantID }
func (b *Booking) ClientID() uuid.UUID         { return b.clientID }
func (b *Booking) Interval() timeline.Interval { return b.interval }
func (b *Booking) ServiceType() string         { return b.serviceType }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) RedemptionID() *uuid.UUID    { return b.redemptionID }
func (b *Booking) FinalPrice() Money           { return b.finalPrice }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
func (b *Booking) Version() int64              { return b.version }

// ConfirmPayment moves a pending booking to confirmed. A booking that
// already left pending_payment (timeout reclamation won the race, or an
// admin released it) must not be resurrected here.
func (b *Booking) ConfirmPayment() error {
	if b.status != StatusPendingPayment {
		return ErrNotPendingPayment
	}
	b.status = StatusConfirmed
	return nil
}

// Release frees the slot after a failed or timed-out payment.
func (b *Booking) Release() error {
	if b.status != StatusPendingPayment {
		return ErrNotPendingPayment
	}
	b.status = StatusReleased
	return nil
}

// Cancel is a client or admin cancellation of a live booking.
func (b *Booking) Cancel() error {
	if !b.status.BlocksSlot() {
		return ErrAlreadyFinal
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) MarkNoShow() error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusNoShow
	return nil
}

func (b *Booking) MarkRescheduled() error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusRescheduled
	return nil
}

// PendingSince reports whether a pending booking has been waiting on
// payment longer than timeout, as seen at now.
func (b *Booking) PendingSince(now time.Time, timeout time.Duration) bool {
	return b.status == StatusPendingPayment && now.Sub(b.createdAt) > timeout
}

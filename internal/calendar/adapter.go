// Package calendar mirrors busy intervals from external calendar
// platforms into local storage and keeps them reconciled, so slot
// generation never calls a third-party API on the request path.
package calendar

import (
	"context"
	"time"
)

// Platform identifies a supported external calendar provider.
type Platform string

const (
	PlatformGoogle  Platform = "google"
	PlatformOutlook Platform = "outlook"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformGoogle, PlatformOutlook:
		return true
	default:
		return false
	}
}

// BusyEvent is one normalized busy interval as reported by a platform.
// SourceEventID is the platform's stable event identifier and drives
// idempotent reconciliation.
type BusyEvent struct {
	SourceEventID string
	Start         time.Time
	End           time.Time
}

// Adapter is implemented once per platform. New platforms plug in by
// implementing this interface and registering with the sync service.
type Adapter interface {
	Platform() Platform

	// FetchBusyIntervals returns the account's busy events overlapping
	// [from, to), normalized to UTC instants.
	FetchBusyIntervals(ctx context.Context, accountRef string, from, to time.Time) ([]BusyEvent, error)

	// PushEvent mirrors a confirmed booking out to the platform so the
	// consultant's own calendar shows it. Returns the created event id.
	PushEvent(ctx context.Context, accountRef, title string, start, end time.Time) (string, error)

	// DeleteEvent removes a previously pushed event, used when a
	// booking is cancelled or released.
	DeleteEvent(ctx context.Context, accountRef, eventID string) error
}

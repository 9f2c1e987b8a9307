package shared

import (
	"context"
	"encoding/json"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/coupon"
	"consultbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinConsultant additionally takes the per-consultant advisory
	// lock before running fn, serializing commit attempts for one
	// consultant while leaving other consultants fully parallel.
	WithinConsultant(ctx context.Context, consultantID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// Reads: pool-backed snapshot reads outside any transaction.
	Reads() ScheduleReads
}

type Tx interface {
	Bookings() BookingRepository
	Coupons() CouponRepository
	Redemptions() RedemptionRepository
	ExternalEvents() ExternalEventRepository
	Notifications() NotificationRepository
	Reads() ScheduleReads
	DB() db.DBTX
}

// ScheduleReads is the read surface the conflict resolver, slot
// generator, and coupon validator share. Inside a commit transaction it
// is tx-backed so re-validation sees the serialized state.
type ScheduleReads interface {
	// TemplateFor returns the availability template version effective
	// at the given instant, or KindNotFound.
	TemplateFor(ctx context.Context, consultantID uuid.UUID, at time.Time) (*TemplateSnapshot, error)
	ExceptionsIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]ExceptionSnapshot, error)
	ActiveBookingsIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]BookingBusySnapshot, error)
	ExternalBusyIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]ExternalBusySnapshot, error)
	SyncHealth(ctx context.Context, consultantID uuid.UUID) ([]PlatformHealth, error)

	ServiceByType(ctx context.Context, serviceType string) (*ServiceSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingByPaymentRef(ctx context.Context, paymentRef string) (*booking.Booking, error)
	BookingsByClient(ctx context.Context, clientID uuid.UUID) ([]BookingView, error)
	ConsultantAgenda(ctx context.Context, consultantID uuid.UUID, day time.Time) ([]BookingView, error)

	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	CouponUserUses(ctx context.Context, couponID uuid.UUID, identityHash string) (int32, error)
	CouponAttemptCounts(ctx context.Context, code, identityHash string, since time.Time) (perCode, allCodes int, err error)

	ExternalAccounts(ctx context.Context, consultantID uuid.UUID) ([]ExternalAccountSnapshot, error)
	ConsultantsWithAccounts(ctx context.Context) ([]uuid.UUID, error)
}

type BookingRepository interface {
	// Create inserts the booking with its buffer-expanded slot range;
	// the storage exclusion constraint turns overlapping inserts into
	// KindConflict.
	Create(ctx context.Context, b *booking.Booking, bufferBefore, bufferAfter time.Duration, paymentRef string) error
	// UpdateStatus persists a status transition with optimistic
	// version check; a stale version yields KindConflict.
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	FindExpiredPending(ctx context.Context, olderThan time.Time, limit int32) ([]*booking.Booking, error)
}

type CouponRepository interface {
	// IncrementUsage bumps uses_count only while below max_uses_total;
	// returns KindConflict when the limit is already reached.
	IncrementUsage(ctx context.Context, couponID uuid.UUID) error
	DecrementUsage(ctx context.Context, couponID uuid.UUID) error
	RecordAttempt(ctx context.Context, code, identityHash string, at time.Time) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, r RedemptionRecord) error
	BindBooking(ctx context.Context, redemptionID, bookingID uuid.UUID) error
	// MarkReleased stamps released_at and returns the coupon to refund;
	// uuid.Nil means the redemption was already released.
	MarkReleased(ctx context.Context, redemptionID uuid.UUID, at time.Time) (uuid.UUID, error)
}

type ExternalEventRepository interface {
	Insert(ctx context.Context, e ExternalEventRecord) error
	UpdateInterval(ctx context.Context, consultantID uuid.UUID, platform, sourceEventID string, start, end, syncedAt time.Time) error
	TouchSynced(ctx context.Context, consultantID uuid.UUID, platform string, sourceEventIDs []string, syncedAt time.Time) error
	DeleteMissing(ctx context.Context, consultantID uuid.UUID, platform string, keepSourceEventIDs []string) (int64, error)
	// DeleteByBooking removes the mirror rows this service pushed for a
	// booking and returns their platform event ids for upstream deletion.
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) ([]PushedEventRef, error)
	RecordSyncSuccess(ctx context.Context, consultantID uuid.UUID, platform string, at time.Time) error
	RecordSyncFailure(ctx context.Context, consultantID uuid.UUID, platform string, at time.Time) error
}

// CalendarMirror pushes committed bookings out to the consultant's
// linked calendars and removes them again on cancel or release.
// Implementations are best-effort: a push or delete failure is logged
// and never propagated into the booking flow.
type CalendarMirror interface {
	MirrorBooking(ctx context.Context, b *booking.Booking)
	UnmirrorBooking(ctx context.Context, b *booking.Booking)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload json.RawMessage, runAt time.Time) error
}

// RedemptionRecord is the append-only redemption row written atomically
// with the booking insert.
type RedemptionRecord struct {
	ID           uuid.UUID
	CouponID     uuid.UUID
	IdentityHash string
	BookingID    *uuid.UUID
	RiskScore    int
	CreatedAt    time.Time
}

// ExternalEventRecord mirrors one normalized external busy interval.
// BookingID is set only on rows this service pushed out itself.
type ExternalEventRecord struct {
	ConsultantID  uuid.UUID
	Platform      string
	SourceEventID string
	Start         time.Time
	End           time.Time
	SyncedAt      time.Time
	BookingID     *uuid.UUID
}

// PushedEventRef identifies one event previously pushed to a platform.
type PushedEventRef struct {
	Platform      string
	SourceEventID string
}

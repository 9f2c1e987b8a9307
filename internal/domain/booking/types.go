package booking

// Status is the lifecycle state of a booking. Bookings are never
// physically deleted; every terminal outcome is a status value so the
// audit trail survives.
type Status string

const (
	// StatusPendingPayment holds the slot while payment capture runs.
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
	StatusCompleted      Status = "completed"
	StatusNoShow         Status = "no_show"
	StatusRescheduled    Status = "rescheduled"
	// StatusReleased is reached when payment fails or times out; the
	// slot is free again but the attempt stays on record.
	StatusReleased Status = "released"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCancelled,
		StatusCompleted, StatusNoShow, StatusRescheduled, StatusReleased:
		return true
	default:
		return false
	}
}

// BlocksSlot reports whether a booking in this status keeps its
// interval unavailable. Only pending and confirmed bookings hold time.
func (s Status) BlocksSlot() bool {
	return s == StatusPendingPayment || s == StatusConfirmed
}

// ActiveStatuses is the set enforced by the storage-level overlap
// exclusion constraint.
var ActiveStatuses = []Status{StatusPendingPayment, StatusConfirmed}

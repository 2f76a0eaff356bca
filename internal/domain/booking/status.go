package booking

import "github.com/clinicore/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the only status the coordinator ever creates with.
func InitialStatus() Status {
	return StatusConfirmed
}

// CanCancel defines whether a booking may move to cancelled. The
// cancellation flow itself is handled outside the booking coordinator.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

package booking

import (
	"context"
	"time"

	"github.com/clinicore/booking-api/internal/models"
)

type Repository interface {
	// -------- Slots --------
	InsertSlotsIfAbsent(
		ctx context.Context,
		candidates []models.Slot,
	) (int, error)

	FindSlotByID(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	CountSlotsInRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) (int64, error)

	ListSlotsInRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Slot, error)

	// -------- Booking (claim protocol) --------
	ClaimSlotAndCreateBooking(
		ctx context.Context,
		b *models.Booking,
		now time.Time,
	) error

	// -------- Booking (read) --------
	FindBookingsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	FindAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}

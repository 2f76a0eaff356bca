package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clinicore/booking-api/internal/audit"
	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/httperr"
	"github.com/clinicore/booking-api/internal/metrics"
	"github.com/clinicore/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	UserID uint
	SlotID uint
}

// ======================================================
// USE CASE
// ======================================================

// BookSlot is the booking coordinator: it resolves races between
// concurrent attempts on the same slot. The pre-checks below only fail
// fast; correctness rests on the claim transaction in the repository
// (compare-and-swap on the booked flag plus the unique booking slot
// reference).
type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Booking, error) {

	slot, err := uc.repo.FindSlotByID(ctx, in.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}

	now := time.Now()

	if !slot.StartAt.After(now) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// Fast-path rejection; the claim transaction re-checks under
	// isolation.
	if slot.Booked {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	b := &models.Booking{
		UserID: in.UserID,
		SlotID: slot.ID,
		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.ClaimSlotAndCreateBooking(ctx, b, now); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.BookingConflicts.Inc()

			uc.audit.Dispatch(audit.Event{
				UserID:   &in.UserID,
				Action:   "booking_conflict",
				Entity:   "slot",
				EntityID: &in.SlotID,
			})
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/httperr"
	"github.com/clinicore/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

// InsertSlotsIfAbsent bulk-inserts candidates, silently skipping any row
// whose (start_at, end_at) window already exists. Returns how many rows
// actually landed; the caller decides whether the difference is a benign
// generator race or a bug worth flagging.
func (r *BookingGormRepository) InsertSlotsIfAbsent(
	ctx context.Context,
	candidates []models.Slot,
) (int, error) {

	if len(candidates) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candidates)
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

func (r *BookingGormRepository) FindSlotByID(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) CountSlotsInRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("start_at >= ? AND start_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) ListSlotsInRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("start_at >= ? AND start_at < ?", from, to).
		Order("start_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Booking claim protocol
// --------------------------------------------------

// ClaimSlotAndCreateBooking runs the atomic claim: inside one transaction
// it re-reads the slot, rejects past or taken slots, flips the booked flag
// with a compare-and-swap (UPDATE ... WHERE booked = false, verified via
// RowsAffected), and inserts the booking row. The unique index on
// bookings.slot_id is the independent backstop: if the swap were ever
// bypassed, the insert still fails and the transaction rolls back.
//
// Every failure leaves no partial state; the booked flag and the booking
// row always move together.
func (r *BookingGormRepository) ClaimSlotAndCreateBooking(
	ctx context.Context,
	b *models.Booking,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.Slot
		if err := tx.First(&slot, b.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		// Time may have advanced since the caller's fast-path check;
		// this re-check is the one that counts.
		if !slot.StartAt.After(now) {
			return httperr.ErrBusiness("slot_in_past")
		}

		if slot.Booked {
			return httperr.ErrBusiness("slot_taken")
		}

		res := tx.Model(&models.Slot{}).
			Where("id = ? AND booked = ?", slot.ID, false).
			Update("booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Another transaction won the swap between our read and
			// this update.
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		slot.Booked = true
		b.Slot = slot
		return nil
	})
}

// --------------------------------------------------
// Booking reads
// --------------------------------------------------

func (r *BookingGormRepository) FindBookingsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) FindAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Slot").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

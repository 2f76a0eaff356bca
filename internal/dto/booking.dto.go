package dto

import (
	"time"

	"github.com/clinicore/booking-api/internal/models"
)

type BookingDTO struct {
	ID        uint      `json:"id"`
	Slot      SlotDTO   `json:"slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingDTO(b models.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		Slot:      NewSlotDTO(b.Slot),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

// AdminBookingDTO adds the owning user for the admin listing.
type AdminBookingDTO struct {
	ID        uint           `json:"id"`
	User      BookingUserDTO `json:"user"`
	Slot      SlotDTO        `json:"slot"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

type BookingUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewAdminBookingDTO(b models.Booking) AdminBookingDTO {
	return AdminBookingDTO{
		ID: b.ID,
		User: BookingUserDTO{
			ID:    b.User.ID,
			Name:  b.User.Name,
			Email: b.User.Email,
		},
		Slot:      NewSlotDTO(b.Slot),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

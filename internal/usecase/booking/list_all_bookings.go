package booking

import (
	"context"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/dto"
)

// ListAllBookings is the admin view: every booking joined with its user
// and slot.
type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
) ([]dto.AdminBookingDTO, error) {

	bookings, err := uc.repo.FindAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.NewAdminBookingDTO(b))
	}

	return out, nil
}

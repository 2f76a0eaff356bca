package booking

import (
	"context"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/dto"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingDTO, error) {

	bookings, err := uc.repo.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.NewBookingDTO(b))
	}

	return out, nil
}

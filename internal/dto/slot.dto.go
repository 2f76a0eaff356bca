package dto

import (
	"fmt"
	"time"

	"github.com/clinicore/booking-api/internal/models"
)

// SlotDTO carries the persisted window plus display strings recomputed at
// the boundary; formatted fields are never stored.
type SlotDTO struct {
	ID            uint      `json:"id"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Booked        bool      `json:"booked"`
	FormattedTime string    `json:"formatted_time"`
	FormattedDate string    `json:"formatted_date"`
}

func NewSlotDTO(s models.Slot) SlotDTO {
	return SlotDTO{
		ID:            s.ID,
		StartAt:       s.StartAt,
		EndAt:         s.EndAt,
		Booked:        s.Booked,
		FormattedTime: formatWindow(s.StartAt, s.EndAt),
		FormattedDate: s.StartAt.Format("Monday, January 2, 2006"),
	}
}

func NewSlotDTOs(slots []models.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotDTO(s))
	}
	return out
}

func formatWindow(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("03:04 PM"), end.Format("03:04 PM"))
}

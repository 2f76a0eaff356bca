package booking

import (
	"time"

	"github.com/clinicore/booking-api/internal/models"
)

type AvailabilityInput struct {
	From time.Time
	To   time.Time
}

// Availability partitions every persisted slot in a range by its booked
// flag. Available and Booked are disjoint and together cover the range.
type Availability struct {
	Available []models.Slot
	Booked    []models.Slot
}

// Partition splits slots (assumed ordered by start time) by booked flag.
func Partition(slots []models.Slot) Availability {
	av := Availability{
		Available: make([]models.Slot, 0, len(slots)),
		Booked:    make([]models.Slot, 0),
	}

	for _, s := range slots {
		if s.Booked {
			av.Booked = append(av.Booked, s)
		} else {
			av.Available = append(av.Available, s)
		}
	}

	return av
}

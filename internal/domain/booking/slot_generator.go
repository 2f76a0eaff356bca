package booking

import (
	"time"

	"github.com/clinicore/booking-api/internal/models"
)

const (
	// SlotDuration is the fixed length of every bookable window.
	SlotDuration = 30 * time.Minute

	businessStartHour = 9
	businessEndHour   = 17

	// GenerationHorizonDays is how far ahead of the reference instant
	// candidates are produced.
	GenerationHorizonDays = 7
)

// GenerateSlots produces the bookable windows for the next
// GenerationHorizonDays starting on the reference instant's day:
// Monday through Friday, 09:00-17:00 local, 30-minute steps, and only
// windows strictly after the reference instant.
//
// The function is pure: the same reference instant always yields the
// same candidate set. It never consults the store; duplicate candidates
// across concurrent callers are absorbed by the slot window uniqueness
// constraint at insert time.
func GenerateSlots(ref time.Time) []models.Slot {
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	var slots []models.Slot
	for day := 0; day < GenerationHorizonDays; day++ {
		date := dayStart.AddDate(0, 0, day)

		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for hour := businessStartHour; hour < businessEndHour; hour++ {
			for minute := 0; minute < 60; minute += 30 {
				startAt := time.Date(
					date.Year(), date.Month(), date.Day(),
					hour, minute, 0, 0,
					date.Location(),
				)

				if !startAt.After(ref) {
					continue
				}

				slots = append(slots, models.Slot{
					StartAt: startAt,
					EndAt:   startAt.Add(SlotDuration),
				})
			}
		}
	}

	return slots
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SlotsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_slots_generated_total",
		Help: "Slot rows persisted by the lazy generator.",
	})

	// SlotInsertConflicts separates the benign generator race (two
	// callers producing the same windows) from silent data loss; a
	// steadily climbing rate without concurrent availability calls
	// points at overlapping candidate generation.
	SlotInsertConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_slot_insert_conflicts_total",
		Help: "Slot candidates skipped because their window already existed.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_bookings_created_total",
		Help: "Bookings committed by the coordinator.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_conflicts_total",
		Help: "Booking attempts rejected because the slot was already taken.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

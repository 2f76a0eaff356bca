package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/dto"
	"github.com/clinicore/booking-api/internal/httperr"
	ucBooking "github.com/clinicore/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	availabilityUC *ucBooking.GetAvailability
	initializeUC   *ucBooking.InitializeSlots
}

func NewSlotHandler(
	availabilityUC *ucBooking.GetAvailability,
	initializeUC *ucBooking.InitializeSlots,
) *SlotHandler {
	return &SlotHandler{
		availabilityUC: availabilityUC,
		initializeUC:   initializeUC,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *SlotHandler) GetAvailability(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_date_range", "Query parameters 'from' and 'to' are required.")
		return
	}

	from, err := parseDate(fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_from_date", "'from' must be a YYYY-MM-DD date.")
		return
	}

	to, err := parseDate(toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_to_date", "'to' must be a YYYY-MM-DD date.")
		return
	}

	if !to.After(from) {
		httperr.BadRequest(c, "invalid_date_range", "'to' must be after 'from'.")
		return
	}

	av, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		From: from,
		// include the whole 'to' day
		To: to.AddDate(0, 0, 1),
	})
	if err != nil {
		httperr.Internal(c, "slots_error", "Failed to fetch available slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available_slots": dto.NewSlotDTOs(av.Available),
		"booked_slots":    dto.NewSlotDTOs(av.Booked),
		"total":           len(av.Available) + len(av.Booked),
		"available":       len(av.Available),
		"booked":          len(av.Booked),
	})
}

// ======================================================
// INITIALIZE (admin)
// ======================================================

func (h *SlotHandler) Initialize(c *gin.Context) {
	res, err := h.initializeUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "init_error", "Failed to initialize slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Slots initialized successfully",
		"candidates": res.Candidates,
		"inserted":   res.Inserted,
	})
}

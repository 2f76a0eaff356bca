package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/booking-api/internal/dto"
	"github.com/clinicore/booking-api/internal/httperr"
	"github.com/clinicore/booking-api/internal/httpresp"
	"github.com/clinicore/booking-api/internal/middleware"
	ucBooking "github.com/clinicore/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	bookUC    *ucBooking.BookSlot
	listMyUC  *ucBooking.ListMyBookings
	listAllUC *ucBooking.ListAllBookings
}

func NewBookingHandler(
	bookUC *ucBooking.BookSlot,
	listMyUC *ucBooking.ListMyBookings,
	listAllUC *ucBooking.ListAllBookings,
) *BookingHandler {
	return &BookingHandler{
		bookUC:    bookUC,
		listMyUC:  listMyUC,
		listAllUC: listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookSlotRequest struct {
	SlotID uint `json:"slot_id" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A slot_id is required.")
		return
	}

	booking, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookSlotInput{
		UserID: userID,
		SlotID: req.SlotID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "Slot not found.")
		case httperr.IsBusiness(err, "slot_in_past"):
			httperr.BadRequest(c, "slot_expired", "Cannot book a slot in the past.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "This slot is no longer available.")
		default:
			httperr.Internal(c, "booking_error", "Failed to create booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": dto.NewBookingDTO(*booking),
	})
}

// ======================================================
// LIST (patient / admin)
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listMyUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "bookings_error", "Failed to fetch bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) AllBookings(c *gin.Context) {
	bookings, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "bookings_error", "Failed to fetch bookings.")
		return
	}

	httpresp.List(c, bookings)
}

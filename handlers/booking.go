package handlers

import (
	"errors"
	"net/http"

	"stayx/database/repository"
	"stayx/middleware"
	"stayx/models"
	"stayx/services/booking"
	"stayx/services/property"
	"stayx/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking creation and dashboard listings.
type BookingHandler struct {
	Bookings booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings booking.Service) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// CreateHandler handles POST /api/bookings.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Bookings.Create(c.Request.Context(), uid, in)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// MineHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MineHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	bookings, err := h.Bookings.ListMine(c.Request.Context(), uid)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	b, err := h.Bookings.GetForUser(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PropertyBookingsHandler handles GET /api/bookings/property/:id for owners.
func (h *BookingHandler) PropertyBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListForProperty(c.Request.Context(), actorSnapshot(c), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	b, err := h.Bookings.Cancel(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, booking.ErrDatesUnavailable):
		utils.JSONError(c, http.StatusConflict, "Dates unavailable", err.Error())
	case errors.Is(err, booking.ErrNotBookingOwner), errors.Is(err, property.ErrNotPropertyOwner):
		utils.JSONError(c, http.StatusForbidden, "Not allowed", "")
	case errors.Is(err, booking.ErrNotCancellable):
		utils.JSONError(c, http.StatusConflict, "Booking cannot be cancelled", "")
	default:
		utils.JSONError(c, http.StatusBadRequest, "Booking operation failed", err.Error())
	}
}

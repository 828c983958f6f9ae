package booking

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"bookit/internal/monitoring"
	"bookit/internal/pkg/response"
	"bookit/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		monitoring.TrackBookingFailure("validation")
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validator.ValidCustomerName(req.CustomerName) {
		monitoring.TrackBookingFailure("validation")
		response.Message(c, http.StatusBadRequest,
			"Customer name must be at least 2 characters, letters and spaces only")
		return
	}
	if !validator.ValidEmail(req.CustomerEmail) {
		monitoring.TrackBookingFailure("validation")
		response.Message(c, http.StatusBadRequest, "A valid customer email is required")
		return
	}

	booking, remaining, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var capErr *CapacityError
		switch {
		case errors.Is(err, ErrExperienceNotFound):
			monitoring.TrackBookingFailure("not_found")
			response.Message(c, http.StatusNotFound, "Experience not found")
		case errors.Is(err, ErrDateUnavailable):
			monitoring.TrackBookingFailure("invalid_slot")
			response.Message(c, http.StatusBadRequest, "Selected date not available")
		case errors.Is(err, ErrTimeUnavailable):
			monitoring.TrackBookingFailure("invalid_slot")
			response.Message(c, http.StatusBadRequest, "Selected time not available")
		case errors.As(err, &capErr):
			monitoring.TrackBookingFailure("capacity")
			response.Message(c, http.StatusBadRequest,
				fmt.Sprintf("Only %d spots available for this time slot", capErr.Remaining))
		default:
			monitoring.TrackBookingFailure("internal")
			log.Printf("create booking failed: %v", err)
			response.Message(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	monitoring.TrackBookingCreated(booking.Quantity)

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Booking created successfully",
		"bookingId":      booking.BookingID,
		"booking":        booking,
		"remainingSpots": remaining,
	})
}

// GetBooking handles GET /api/bookings/:bookingId
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetByReference(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Message(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("get booking failed: %v", err)
		response.Message(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:bookingId", h.GetBooking)
	}
}

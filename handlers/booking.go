package handlers

import (
	"errors"
	"net/http"

	"salonflow/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the public booking-request intake endpoint.
type BookingHandler struct {
	Intake booking.IntakeService
	Logger *zap.Logger
}

// NewBookingHandler builds the intake handler.
func NewBookingHandler(intake booking.IntakeService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Intake: intake, Logger: logger}
}

// SubmitBookingRequest accepts a client's appointment request.
//
// POST /booking
func (h *BookingHandler) SubmitBookingRequest(c *gin.Context) {
	var input booking.IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields",
		})
		return
	}

	requestID, err := h.Intake.SubmitRequest(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required fields",
			})
		case errors.Is(err, booking.ErrMissingContactFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Email and phone are required for regular submissions",
			})
		case errors.Is(err, booking.ErrSalonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Salon not found",
			})
		default:
			h.logger(c).Error("booking intake failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Booking request submitted successfully",
		"requestId": requestID,
	})
}

func (h *BookingHandler) logger(c *gin.Context) *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return getLogger(c)
}

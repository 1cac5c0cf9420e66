package handlers

import (
	"errors"
	"net/http"

	bookingRepo "salonflow/database/repository/bookingrequest"
	usageRepo "salonflow/database/repository/usage"
	"salonflow/middleware"
	"salonflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestsHandler serves the dashboard's request-management and billing views.
type RequestsHandler struct {
	Requests bookingRepo.BookingRequestRepository
	Usage    usageRepo.UsageRecordRepository
}

// NewRequestsHandler builds the booking-request dashboard handler.
func NewRequestsHandler(requests bookingRepo.BookingRequestRepository, usage usageRepo.UsageRecordRepository) *RequestsHandler {
	return &RequestsHandler{Requests: requests, Usage: usage}
}

// GetRequestsHandler lists the authenticated salon's booking requests,
// newest first. An optional ?status= filter narrows the list.
func (h *RequestsHandler) GetRequestsHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	status := c.Query("status")

	requests, err := h.Requests.GetBySalonID(c.Request.Context(), salonID, status)
	if err != nil {
		getLogger(c).Error("Failed to retrieve booking requests", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get booking requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateRequestStatusHandler resolves a booking request from the dashboard.
func (h *RequestsHandler) UpdateRequestStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if input.Status != models.StatusBooked && input.Status != models.StatusNotBooked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'booked' or 'not-booked'"})
		return
	}

	if err := h.Requests.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found"})
			return
		}
		getLogger(c).Error("Failed to update booking request status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking request updated", "status": input.Status})
}

// GetUsageHandler lists the authenticated salon's billable usage records.
func (h *RequestsHandler) GetUsageHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	records, err := h.Usage.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve usage records", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get usage records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": records})
}

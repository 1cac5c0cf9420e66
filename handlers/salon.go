package handlers

import (
	"errors"
	"net/http"

	salonRepo "salonflow/database/repository/salon"
	"salonflow/middleware"
	"salonflow/models"
	"salonflow/services/salon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SalonHandler serves salon CRUD for the dashboard plus the public
// slug lookup for the booking page.
type SalonHandler struct {
	Repo      salonRepo.SalonRepository
	Directory salon.Directory
}

// NewSalonHandler builds the salon handler.
func NewSalonHandler(repo salonRepo.SalonRepository, directory salon.Directory) *SalonHandler {
	return &SalonHandler{Repo: repo, Directory: directory}
}

// GetSalonBySlugHandler serves the public booking-page projection.
// Notification rosters and billing are never exposed here.
func (h *SalonHandler) GetSalonBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	s, err := h.Directory.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
			return
		}
		getLogger(c).Error("Failed to resolve salon by slug", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get salon"})
		return
	}
	c.JSON(http.StatusOK, s.Public())
}

// GetSalonHandler returns the authenticated salon's full record.
func (h *SalonHandler) GetSalonHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	s, err := h.Repo.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
			return
		}
		getLogger(c).Error("Failed to fetch salon", zap.String("id", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get salon"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateSalonHandler creates a new salon.
func (h *SalonHandler) CreateSalonHandler(c *gin.Context) {
	var s models.Salon
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if s.Slug == "" || s.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and name are required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &s)
	if err != nil {
		getLogger(c).Error("Failed to create salon", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salon"})
		return
	}
	s.ID = id
	c.JSON(http.StatusCreated, s)
}

// UpdateSalonHandler updates the authenticated salon.
func (h *SalonHandler) UpdateSalonHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	var s models.Salon
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	s.ID = salonID // Ensure the ID is set.

	if err := h.Repo.Update(c.Request.Context(), &s); err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
			return
		}
		getLogger(c).Error("Failed to update salon", zap.String("id", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update salon"})
		return
	}
	if s.Slug != "" {
		h.Directory.InvalidateSlug(c.Request.Context(), s.Slug)
	}
	c.JSON(http.StatusOK, s)
}

// DeleteSalonHandler deletes the authenticated salon.
func (h *SalonHandler) DeleteSalonHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)

	s, err := h.Repo.GetByID(c.Request.Context(), salonID)
	if err != nil && !errors.Is(err, salonRepo.ErrNotFound) {
		getLogger(c).Error("Failed to fetch salon before delete", zap.String("id", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete salon"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), salonID); err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
			return
		}
		getLogger(c).Error("Failed to delete salon", zap.String("id", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete salon"})
		return
	}
	if s != nil {
		h.Directory.InvalidateSlug(c.Request.Context(), s.Slug)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	providerRepo "salonflow/database/repository/provider"
	"salonflow/middleware"
	"salonflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves provider roster CRUD for the dashboard.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

// NewProviderHandler builds the provider handler.
func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// GetProvidersHandler returns the authenticated salon's providers.
func (h *ProviderHandler) GetProvidersHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	providers, err := h.Repo.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve providers", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// CreateProviderHandler creates a new provider on the salon's roster.
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	provider.SalonID = c.GetString(middleware.SalonIDKey)
	if provider.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &provider)
	if err != nil {
		getLogger(c).Error("Failed to create provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create provider"})
		return
	}
	provider.ID = id
	c.JSON(http.StatusCreated, provider)
}

// UpdateProviderHandler updates provider information.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	id := c.Param("id")
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	provider.ID = id // Ensure the ID is set.
	provider.SalonID = c.GetString(middleware.SalonIDKey)

	if err := h.Repo.Update(c.Request.Context(), &provider); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		getLogger(c).Error("Failed to update provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
		return
	}
	c.JSON(http.StatusOK, provider)
}

// DeleteProviderHandler deletes a provider.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		getLogger(c).Error("Failed to delete provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete provider"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	serviceRepo "salonflow/database/repository/service"
	"salonflow/middleware"
	"salonflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves service catalog CRUD for the dashboard.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

// NewServiceHandler builds the service catalog handler.
func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// GetServicesHandler returns the authenticated salon's service catalog.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	services, err := h.Repo.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve services", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateServiceHandler adds a catalog entry.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.SalonID = c.GetString(middleware.SalonIDKey)
	if svc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &svc)
	if err != nil {
		getLogger(c).Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	svc.ID = id
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler updates a catalog entry.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ID = id // Ensure the ID is set.
	svc.SalonID = c.GetString(middleware.SalonIDKey)

	if err := h.Repo.Update(c.Request.Context(), &svc); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		getLogger(c).Error("Failed to update service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a catalog entry.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		getLogger(c).Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

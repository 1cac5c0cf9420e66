package handlers

import (
	"errors"
	"net/http"

	salonRepo "salonflow/database/repository/salon"
	"salonflow/middleware"
	"salonflow/services/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// MediaHandler serves salon media uploads for the dashboard.
type MediaHandler struct {
	Media  storage.MediaService
	Salons salonRepo.SalonRepository
}

// NewMediaHandler builds the media handler.
func NewMediaHandler(media storage.MediaService, salons salonRepo.SalonRepository) *MediaHandler {
	return &MediaHandler{Media: media, Salons: salons}
}

// UploadLogoHandler stores a salon logo and records its URL on the salon.
func (h *MediaHandler) UploadLogoHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file upload"})
		return
	}
	defer file.Close()

	publicID, url, err := h.Media.Upload(c.Request.Context(), file, "salon-logos")
	if err != nil {
		getLogger(c).Error("Failed to upload logo", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload logo"})
		return
	}

	if err := h.Salons.UpdateSetDocument(c.Request.Context(), salonID, bson.M{"logoUrl": url, "logoPublicId": publicID}); err != nil {
		getLogger(c).Error("Failed to save logo URL", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "logoUrl": url})
}

// DeleteLogoHandler removes the salon's stored logo and clears its URL.
func (h *MediaHandler) DeleteLogoHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)

	salon, err := h.Salons.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
			return
		}
		getLogger(c).Error("Failed to load salon", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete logo"})
		return
	}
	if salon.LogoPublicID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No logo to delete"})
		return
	}

	if err := h.Media.Delete(c.Request.Context(), salon.LogoPublicID); err != nil {
		getLogger(c).Error("Failed to delete logo", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete logo"})
		return
	}

	if err := h.Salons.UpdateSetDocument(c.Request.Context(), salonID, bson.M{"logoUrl": "", "logoPublicId": ""}); err != nil {
		getLogger(c).Error("Failed to clear logo URL", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logo deleted"})
}

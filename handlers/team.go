package handlers

import (
	"errors"
	"net/http"

	teamRepo "salonflow/database/repository/team"
	"salonflow/middleware"
	"salonflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeamHandler serves team member CRUD for the dashboard.
type TeamHandler struct {
	Repo teamRepo.TeamMemberRepository
}

// NewTeamHandler builds the team member handler.
func NewTeamHandler(repo teamRepo.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{Repo: repo}
}

// GetTeamMembersHandler returns the authenticated salon's team members.
func (h *TeamHandler) GetTeamMembersHandler(c *gin.Context) {
	salonID := c.GetString(middleware.SalonIDKey)
	members, err := h.Repo.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		getLogger(c).Error("Failed to retrieve team members", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get team members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamMembers": members})
}

// CreateTeamMemberHandler creates a new team member.
func (h *TeamHandler) CreateTeamMemberHandler(c *gin.Context) {
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	member.SalonID = c.GetString(middleware.SalonIDKey)
	if member.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &member)
	if err != nil {
		getLogger(c).Error("Failed to create team member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}
	member.ID = id
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMemberHandler updates team member information.
func (h *TeamHandler) UpdateTeamMemberHandler(c *gin.Context) {
	id := c.Param("id")
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	member.ID = id // Ensure the ID is set.
	member.SalonID = c.GetString(middleware.SalonIDKey)

	if err := h.Repo.Update(c.Request.Context(), &member); err != nil {
		if errors.Is(err, teamRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		getLogger(c).Error("Failed to update team member", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMemberHandler deletes a team member.
func (h *TeamHandler) DeleteTeamMemberHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, teamRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		getLogger(c).Error("Failed to delete team member", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted"})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/internal/middleware"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// UpdateProfileInput carries the only user field that may change after
// registration.
type UpdateProfileInput struct {
	Name string `json:"name" binding:"required"`
}

// GetProfileHandler returns the authenticated user's account data.
func GetProfileHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, currentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// UpdateProfileHandler renames the account and drops the cached identity so
// the change is visible on the next request.
func UpdateProfileHandler(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Name = input.Name
	if err := config.DB.Save(&user).Error; err != nil {
		slog.Error("failed to update profile", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	middleware.InvalidateUserCache(user.ID)

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

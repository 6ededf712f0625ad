package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// ReminderInput defines the payload for a payment reminder. Amount is
// optional; not every bill is known up front.
type ReminderInput struct {
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount"`
	DueDate     string   `json:"dueDate" binding:"required"`
}

// ReminderPaidInput toggles the paid flag. A pointer so that explicitly
// sending false still binds.
type ReminderPaidInput struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

// ListRemindersHandler returns the caller's reminders, soonest due first.
func ListRemindersHandler(c *gin.Context) {
	var reminders []models.Reminder
	if err := config.DB.Where("user_id = ?", currentUserID(c)).Order("due_date asc, id asc").Find(&reminders).Error; err != nil {
		slog.Error("failed to fetch reminders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// CreateReminderHandler records a new payment reminder, unpaid by default.
func CreateReminderHandler(c *gin.Context) {
	var input ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.DueDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected YYYY-MM-DD"})
		return
	}

	reminder := models.Reminder{
		Description: input.Description,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		UserID:      currentUserID(c),
	}
	if err := config.DB.Create(&reminder).Error; err != nil {
		slog.Error("failed to create reminder", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// UpdateReminderPaidHandler flips the paid flag on a reminder the caller
// owns.
func UpdateReminderPaidHandler(c *gin.Context) {
	var input ReminderPaidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isPaid is required"})
		return
	}

	var reminder models.Reminder
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&reminder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	if err := config.DB.Model(&reminder).Update("is_paid", *input.IsPaid).Error; err != nil {
		slog.Error("failed to update reminder", "error", err, "reminder_id", reminder.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminderHandler removes one reminder the caller owns.
func DeleteReminderHandler(c *gin.Context) {
	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.Reminder{})
	if result.Error != nil {
		slog.Error("failed to delete reminder", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

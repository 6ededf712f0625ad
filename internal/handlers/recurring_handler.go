package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/internal/finance"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// RecurringInput defines the payload for a recurring transaction definition.
// DayOfMonth outside 1-31 is rejected here; generation later clamps valid
// days to shorter months.
type RecurringInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	DayOfMonth  int     `json:"dayOfMonth" binding:"required,min=1,max=31"`
	Category    string  `json:"category" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
}

// ListRecurringHandler returns the caller's recurring definitions.
func ListRecurringHandler(c *gin.Context) {
	var definitions []models.RecurringTransaction
	if err := config.DB.Where("user_id = ?", currentUserID(c)).Order("id asc").Find(&definitions).Error; err != nil {
		slog.Error("failed to fetch recurring transactions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recurring transactions"})
		return
	}

	c.JSON(http.StatusOK, definitions)
}

// CreateRecurringHandler stores a new definition. The amount is kept as a
// positive magnitude; the sign comes from the type at generation time.
func CreateRecurringHandler(c *gin.Context) {
	var input RecurringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	definition := models.RecurringTransaction{
		Description: input.Description,
		Amount:      math.Abs(input.Amount),
		DayOfMonth:  input.DayOfMonth,
		Category:    input.Category,
		Type:        input.Type,
		UserID:      currentUserID(c),
	}
	if err := config.DB.Create(&definition).Error; err != nil {
		slog.Error("failed to create recurring transaction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring transaction"})
		return
	}

	c.JSON(http.StatusCreated, definition)
}

// DeleteRecurringHandler removes one definition the caller owns. Ledger
// entries already materialized from it stay.
func DeleteRecurringHandler(c *gin.Context) {
	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.RecurringTransaction{})
	if result.Error != nil {
		slog.Error("failed to delete recurring transaction", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recurring transaction"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

var errAlreadyGenerated = errors.New("already generated for this month")

// GenerateRecurringHandler materializes every definition due in the current
// month into a real ledger entry. Each definition runs in its own database
// transaction that re-checks the last_generated stamp before inserting, so a
// racing call skips it instead of double-inserting. Without serializable
// isolation two calls can still both pass the re-check; generation is
// at-least-once, not exactly-once.
func GenerateRecurringHandler(c *gin.Context) {
	userID := currentUserID(c)
	now := time.Now()
	monthKey := finance.MonthKey(now)

	var definitions []models.RecurringTransaction
	if err := config.DB.Where("user_id = ?", userID).Find(&definitions).Error; err != nil {
		slog.Error("failed to fetch recurring transactions", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recurring transactions"})
		return
	}

	materialized, updated := finance.GenerateDue(definitions, now)

	generated := 0
	for i := range materialized {
		transaction := materialized[i]
		definition := updated[i]

		err := config.DB.Transaction(func(tx *gorm.DB) error {
			var current models.RecurringTransaction
			if err := tx.Where("id = ? AND user_id = ?", definition.ID, userID).First(&current).Error; err != nil {
				return err
			}
			if current.LastGenerated != nil && *current.LastGenerated == monthKey {
				return errAlreadyGenerated
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			return tx.Model(&current).Update("last_generated", monthKey).Error
		})

		switch {
		case err == nil:
			generated++
		case errors.Is(err, errAlreadyGenerated):
			// Lost the race to a concurrent generate call; nothing to do.
		default:
			slog.Error("failed to generate recurring transaction", "error", err, "recurring_id", definition.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recurring transactions"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"generated": generated})
}

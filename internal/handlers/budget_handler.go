package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// BudgetInput defines the payload for setting a category budget. Amount has
// no required binding on purpose: zero is meaningful and means "remove".
type BudgetInput struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount"`
}

// ListBudgetsHandler returns the caller's budgets as a category → amount
// object, the shape the dashboard consumes directly.
func ListBudgetsHandler(c *gin.Context) {
	var budgets []models.Budget
	if err := config.DB.Where("user_id = ?", currentUserID(c)).Find(&budgets).Error; err != nil {
		slog.Error("failed to fetch budgets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}

	budgetsObject := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		budgetsObject[b.Category] = b.Amount
	}

	c.JSON(http.StatusOK, budgetsObject)
}

// UpsertBudgetHandler stores the limit for one category. There is at most one
// budget per (category, user); a non-positive amount deletes the row instead
// of keeping a pointless zero limit around.
func UpsertBudgetHandler(c *gin.Context) {
	var input BudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	userID := currentUserID(c)

	if input.Amount <= 0 {
		err := config.DB.Unscoped().
			Where("category = ? AND user_id = ?", input.Category, userID).
			Delete(&models.Budget{}).Error
		if err != nil {
			slog.Error("failed to delete budget", "error", err, "category", input.Category)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
			return
		}
		c.Status(http.StatusOK)
		return
	}

	budget := models.Budget{
		Category: input.Category,
		Amount:   input.Amount,
		UserID:   userID,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&budget).Error
	if err != nil {
		slog.Error("failed to upsert budget", "error", err, "category", input.Category)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		return
	}

	c.Status(http.StatusOK)
}

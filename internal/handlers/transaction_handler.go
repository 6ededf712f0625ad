package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/internal/finance"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// TransactionInput defines the payload for creating or updating a ledger
// entry. The amount may arrive with either sign; the handler normalizes it
// from the type.
type TransactionInput struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=income expense"`
	Category      string  `json:"category" binding:"required"`
	PaymentMethod *string `json:"paymentMethod"`
}

func (in TransactionInput) signedAmount() float64 {
	if in.Type == models.TypeExpense {
		return -math.Abs(in.Amount)
	}
	return math.Abs(in.Amount)
}

// paymentMethodOrNil drops the payment method for incomes; it only makes
// sense on the expense side.
func (in TransactionInput) paymentMethodOrNil() *string {
	if in.Type != models.TypeExpense {
		return nil
	}
	return in.PaymentMethod
}

// ListTransactionsHandler returns the caller's ledger, newest first, run
// through the search/type/month filters. The result is paginated unless
// all=true asks for the raw slice.
func ListTransactionsHandler(c *gin.Context) {
	transactions, ok := fetchFilteredTransactions(c)
	if !ok {
		return
	}

	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, gin.H{"data": transactions})
		return
	}

	page, pageSize := pageParams(c)
	pageItems, currentPage, totalPages := finance.Paginate(transactions, pageSize, page)

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:        pageItems,
		TotalRows:   len(transactions),
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
	})
}

// CreateTransactionHandler records a new ledger entry for the caller.
func CreateTransactionHandler(c *gin.Context) {
	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	transaction := models.Transaction{
		Description:   input.Description,
		Amount:        input.signedAmount(),
		Date:          input.Date,
		Type:          input.Type,
		Category:      input.Category,
		PaymentMethod: input.paymentMethodOrNil(),
		UserID:        currentUserID(c),
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		slog.Error("failed to create transaction", "error", err, "user_id", transaction.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransactionHandler rewrites an entry the caller owns. A transaction
// owned by someone else is indistinguishable from a missing one.
func UpdateTransactionHandler(c *gin.Context) {
	userID := currentUserID(c)

	var transaction models.Transaction
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&transaction).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	transaction.Description = input.Description
	transaction.Amount = input.signedAmount()
	transaction.Date = input.Date
	transaction.Type = input.Type
	transaction.Category = input.Category
	transaction.PaymentMethod = input.paymentMethodOrNil()

	if err := config.DB.Save(&transaction).Error; err != nil {
		slog.Error("failed to update transaction", "error", err, "transaction_id", transaction.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransactionHandler removes one entry the caller owns.
func DeleteTransactionHandler(c *gin.Context) {
	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.Transaction{})
	if result.Error != nil {
		slog.Error("failed to delete transaction", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearTransactionsHandler wipes the caller's entire ledger.
func ClearTransactionsHandler(c *gin.Context) {
	if err := config.DB.Where("user_id = ?", currentUserID(c)).Delete(&models.Transaction{}).Error; err != nil {
		slog.Error("failed to clear transactions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear transactions"})
		return
	}

	c.Status(http.StatusNoContent)
}

// fetchFilteredTransactions loads the caller's ledger ordered newest first
// and applies the query-string filters. Writes the error response itself when
// the load fails.
func fetchFilteredTransactions(c *gin.Context) ([]models.Transaction, bool) {
	var transactions []models.Transaction
	err := config.DB.
		Where("user_id = ?", currentUserID(c)).
		Order("date desc, id desc").
		Find(&transactions).Error
	if err != nil {
		slog.Error("failed to fetch transactions", "error", err, "user_id", currentUserID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return nil, false
	}

	filtered := finance.Apply(transactions, finance.Filters{
		Search: c.Query("search"),
		Type:   c.DefaultQuery("type", "all"),
		Month:  c.DefaultQuery("month", "all"),
	})
	return filtered, true
}

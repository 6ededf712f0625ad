package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/internal/finance"
	"github.com/Gusttavohenn/finandash-fullstack/models"
)

const (
	defaultSummaryMonths = 6
	maxSummaryMonths     = 24
)

// GetDashboardHandler assembles the whole dashboard view model in one
// request: headline totals and the category chart for the selected range
// (thisMonth, lastMonth, thisYear or all), the n-month income/expense
// summary, budget utilization for the current month, and the five newest
// entries. All aggregation happens over request-scoped data; nothing is
// cached between calls.
func GetDashboardHandler(c *gin.Context) {
	userID := currentUserID(c)
	now := time.Now()

	var transactions []models.Transaction
	if err := config.DB.Where("user_id = ?", userID).Order("date desc, id desc").Find(&transactions).Error; err != nil {
		slog.Error("failed to fetch transactions", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	var budgets []models.Budget
	if err := config.DB.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		slog.Error("failed to fetch budgets", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(defaultSummaryMonths)))
	switch {
	case months <= 0:
		months = defaultSummaryMonths
	case months > maxSummaryMonths:
		months = maxSummaryMonths
	}

	dateRange := c.DefaultQuery("range", "thisMonth")
	rangedTransactions := finance.FilterByDateRange(transactions, dateRange, now)
	thisMonthTransactions := finance.FilterByDateRange(transactions, "thisMonth", now)

	recent := transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":             finance.CalculateTotals(rangedTransactions),
		"expensesByCategory": finance.ExpensesByCategory(rangedTransactions),
		"monthlySummary":     finance.SummarizeMonths(transactions, months, now),
		"budgetsStatus":      finance.BudgetsStatus(budgets, thisMonthTransactions),
		"recentTransactions": recent,
	})
}

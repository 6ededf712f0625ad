package finance

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// Totals is the headline card of the dashboard. Expenses keep their stored
// negative sign; absolute values are a display concern.
type Totals struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// CalculateTotals sums the signed amounts per type. Balance is always
// revenue + expenses.
func CalculateTotals(transactions []models.Transaction) Totals {
	var totals Totals
	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			totals.Revenue += tx.Amount
		case models.TypeExpense:
			totals.Expenses += tx.Amount
		}
	}
	totals.Balance = totals.Revenue + totals.Expenses
	return totals
}

// ExpensesByCategory sums the absolute expense amounts per category. Income
// rows are ignored.
func ExpensesByCategory(transactions []models.Transaction) map[string]float64 {
	byCategory := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		byCategory[tx.Category] += math.Abs(tx.Amount)
	}
	return byCategory
}

// MonthlySummary feeds the income/expense bar chart. The three slices are
// parallel and ordered chronologically, oldest month first.
type MonthlySummary struct {
	Labels      []string  `json:"labels"`
	IncomeData  []float64 `json:"incomeData"`
	ExpenseData []float64 `json:"expenseData"`
}

// SummarizeMonths totals income and absolute expense for each of the n
// months ending at ref's month (inclusive). Months are walked backward from
// ref and the result reversed so the oldest comes first.
func SummarizeMonths(transactions []models.Transaction, n int, ref time.Time) MonthlySummary {
	summary := MonthlySummary{
		Labels:      make([]string, 0, n),
		IncomeData:  make([]float64, 0, n),
		ExpenseData: make([]float64, 0, n),
	}

	// Anchoring on the 15th keeps AddDate from sliding into the wrong month
	// when ref falls on a day the target month does not have.
	anchor := time.Date(ref.Year(), ref.Month(), 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		month := anchor.AddDate(0, -i, 0)
		prefix := MonthKey(month)

		var income, expense float64
		for _, tx := range transactions {
			if !strings.HasPrefix(tx.Date, prefix) {
				continue
			}
			switch tx.Type {
			case models.TypeIncome:
				income += tx.Amount
			case models.TypeExpense:
				expense += math.Abs(tx.Amount)
			}
		}

		summary.Labels = append(summary.Labels, month.Format("Jan/2006"))
		summary.IncomeData = append(summary.IncomeData, income)
		summary.ExpenseData = append(summary.ExpenseData, expense)
	}

	reverseStrings(summary.Labels)
	reverseFloats(summary.IncomeData)
	reverseFloats(summary.ExpenseData)
	return summary
}

// BudgetStatus is one row of the budget utilization panel.
type BudgetStatus struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
}

// BudgetsStatus reports how much of each budget the given transactions
// (normally the current month's) have consumed, most utilized first. A zero
// budget reports 0% rather than dividing by zero.
func BudgetsStatus(budgets []models.Budget, transactions []models.Transaction) []BudgetStatus {
	spentByCategory := ExpensesByCategory(transactions)

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		percentage := 0.0
		if b.Amount > 0 {
			percentage = spent / b.Amount * 100
		}
		statuses = append(statuses, BudgetStatus{
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      spent,
			Percentage: percentage,
		})
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Percentage > statuses[j].Percentage
	})
	return statuses
}

// FilterByDateRange returns the transactions inside the named calendar
// window, resolved against now. Unrecognized range names pass everything
// through.
func FilterByDateRange(transactions []models.Transaction, dateRange string, now time.Time) []models.Transaction {
	var prefix string
	switch dateRange {
	case "thisMonth":
		prefix = MonthKey(now)
	case "lastMonth":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		prefix = MonthKey(firstOfMonth.AddDate(0, -1, 0))
	case "thisYear":
		prefix = now.Format("2006")
	default:
		return transactions
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, prefix) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

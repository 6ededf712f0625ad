package finance

import (
	"testing"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

func TestCalculateTotals(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: -50, Type: models.TypeExpense, Category: "food"},
		{Amount: 200, Type: models.TypeIncome, Category: "work"},
	}

	totals := CalculateTotals(transactions)
	if totals.Revenue != 200 {
		t.Errorf("revenue = %v, want 200", totals.Revenue)
	}
	if totals.Expenses != -50 {
		t.Errorf("expenses = %v, want -50", totals.Expenses)
	}
	if totals.Balance != 150 {
		t.Errorf("balance = %v, want 150", totals.Balance)
	}
}

func TestCalculateTotalsInvariants(t *testing.T) {
	sets := [][]models.Transaction{
		nil,
		{{Amount: 10, Type: models.TypeIncome}},
		{{Amount: -10, Type: models.TypeExpense}},
		{{Amount: 99.5, Type: models.TypeIncome}, {Amount: -0.5, Type: models.TypeExpense}, {Amount: -12, Type: models.TypeExpense}},
	}
	for i, transactions := range sets {
		totals := CalculateTotals(transactions)
		if totals.Balance != totals.Revenue+totals.Expenses {
			t.Errorf("set %d: balance %v != revenue %v + expenses %v", i, totals.Balance, totals.Revenue, totals.Expenses)
		}
		if totals.Revenue < 0 {
			t.Errorf("set %d: revenue %v is negative", i, totals.Revenue)
		}
		if totals.Expenses > 0 {
			t.Errorf("set %d: expenses %v is positive", i, totals.Expenses)
		}
	}
}

func TestExpensesByCategory(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: -50, Type: models.TypeExpense, Category: "food"},
		{Amount: -25.5, Type: models.TypeExpense, Category: "food"},
		{Amount: -10, Type: models.TypeExpense, Category: "transport"},
		{Amount: 200, Type: models.TypeIncome, Category: "work"},
	}

	byCategory := ExpensesByCategory(transactions)
	if len(byCategory) != 2 {
		t.Fatalf("got %d categories, want 2", len(byCategory))
	}
	if byCategory["food"] != 75.5 {
		t.Errorf("food = %v, want 75.5", byCategory["food"])
	}
	if byCategory["transport"] != 10 {
		t.Errorf("transport = %v, want 10", byCategory["transport"])
	}
	if _, ok := byCategory["work"]; ok {
		t.Errorf("income category leaked into the expense breakdown")
	}
}

func TestSummarizeMonths(t *testing.T) {
	transactions := []models.Transaction{
		{Date: "2024-02-10", Amount: 1000, Type: models.TypeIncome},
		{Date: "2024-02-11", Amount: -200, Type: models.TypeExpense},
		{Date: "2024-03-05", Amount: -300, Type: models.TypeExpense},
		{Date: "2024-04-01", Amount: 500, Type: models.TypeIncome},
		{Date: "2023-04-01", Amount: 9999, Type: models.TypeIncome}, // out of window
	}

	summary := SummarizeMonths(transactions, 3, date(2024, 4, 20))

	wantLabels := []string{"Feb/2024", "Mar/2024", "Apr/2024"}
	if len(summary.Labels) != len(wantLabels) {
		t.Fatalf("got %d labels, want %d", len(summary.Labels), len(wantLabels))
	}
	for i, want := range wantLabels {
		if summary.Labels[i] != want {
			t.Errorf("label[%d] = %q, want %q", i, summary.Labels[i], want)
		}
	}

	wantIncome := []float64{1000, 0, 500}
	wantExpense := []float64{200, 300, 0}
	for i := range wantIncome {
		if summary.IncomeData[i] != wantIncome[i] {
			t.Errorf("income[%d] = %v, want %v", i, summary.IncomeData[i], wantIncome[i])
		}
		if summary.ExpenseData[i] != wantExpense[i] {
			t.Errorf("expense[%d] = %v, want %v", i, summary.ExpenseData[i], wantExpense[i])
		}
	}
}

func TestSummarizeMonthsCrossesYearBoundary(t *testing.T) {
	summary := SummarizeMonths(nil, 3, date(2024, 1, 31))
	wantLabels := []string{"Nov/2023", "Dec/2023", "Jan/2024"}
	for i, want := range wantLabels {
		if summary.Labels[i] != want {
			t.Errorf("label[%d] = %q, want %q", i, summary.Labels[i], want)
		}
	}
}

func TestBudgetsStatus(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", Amount: 100},
		{Category: "transport", Amount: 200},
		{Category: "fun", Amount: 0},
	}
	monthTransactions := []models.Transaction{
		{Amount: -90, Type: models.TypeExpense, Category: "food"},
		{Amount: -20, Type: models.TypeExpense, Category: "transport"},
		{Amount: -45, Type: models.TypeExpense, Category: "fun"},
	}

	statuses := BudgetsStatus(budgets, monthTransactions)
	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3", len(statuses))
	}

	// Sorted by utilization: food 90%, transport 10%, fun 0% (zero budget).
	if statuses[0].Category != "food" || statuses[0].Percentage != 90 {
		t.Errorf("statuses[0] = %+v, want food at 90%%", statuses[0])
	}
	if statuses[1].Category != "transport" || statuses[1].Percentage != 10 {
		t.Errorf("statuses[1] = %+v, want transport at 10%%", statuses[1])
	}
	if statuses[2].Category != "fun" || statuses[2].Percentage != 0 {
		t.Errorf("statuses[2] = %+v, want fun at 0%% for a zero budget", statuses[2])
	}
	if statuses[2].Spent != 45 {
		t.Errorf("fun spent = %v, want 45 even with a zero budget", statuses[2].Spent)
	}

	for i := 1; i < len(statuses); i++ {
		if statuses[i-1].Percentage < statuses[i].Percentage {
			t.Errorf("statuses not sorted descending at index %d", i)
		}
	}
}

func TestFilterByDateRange(t *testing.T) {
	transactions := []models.Transaction{
		{Date: "2024-04-01", Description: "this month"},
		{Date: "2024-03-20", Description: "last month"},
		{Date: "2024-01-05", Description: "this year"},
		{Date: "2023-12-31", Description: "last year"},
	}
	now := date(2024, 4, 20)

	cases := []struct {
		dateRange string
		want      int
	}{
		{"thisMonth", 1},
		{"lastMonth", 1},
		{"thisYear", 3},
		{"all", 4},
		{"", 4},
	}
	for _, tc := range cases {
		if got := FilterByDateRange(transactions, tc.dateRange, now); len(got) != tc.want {
			t.Errorf("range %q: got %d transactions, want %d", tc.dateRange, len(got), tc.want)
		}
	}
}

func TestFilterByDateRangeLastMonthAcrossYears(t *testing.T) {
	transactions := []models.Transaction{
		{Date: "2023-12-15"},
		{Date: "2024-01-10"},
	}
	got := FilterByDateRange(transactions, "lastMonth", date(2024, 1, 20))
	if len(got) != 1 || got[0].Date != "2023-12-15" {
		t.Fatalf("lastMonth from January should select December of the previous year, got %+v", got)
	}
}

package finance

import (
	"testing"
	"time"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func TestGenerateDueOncePerMonth(t *testing.T) {
	defs := []models.RecurringTransaction{
		{Description: "Salary", Amount: 100, DayOfMonth: 15, Category: "work", Type: models.TypeIncome, UserID: 7},
	}
	today := date(2024, 4, 20)

	materialized, updated := GenerateDue(defs, today)
	if len(materialized) != 1 || len(updated) != 1 {
		t.Fatalf("expected 1 transaction and 1 update, got %d and %d", len(materialized), len(updated))
	}

	tx := materialized[0]
	if tx.Date != "2024-04-15" {
		t.Errorf("date = %q, want 2024-04-15", tx.Date)
	}
	if tx.Amount != 100 {
		t.Errorf("amount = %v, want +100", tx.Amount)
	}
	if tx.UserID != 7 {
		t.Errorf("user id = %d, want 7", tx.UserID)
	}
	if updated[0].LastGenerated == nil || *updated[0].LastGenerated != "2024-04" {
		t.Errorf("lastGenerated = %v, want 2024-04", updated[0].LastGenerated)
	}

	// Second run in the same month must be a no-op.
	materialized, updated = GenerateDue(updated, today)
	if len(materialized) != 0 || len(updated) != 0 {
		t.Fatalf("second run produced %d transactions and %d updates, want none", len(materialized), len(updated))
	}
}

func TestGenerateDueClampsDayOfMonth(t *testing.T) {
	cases := []struct {
		name  string
		day   int
		today time.Time
		want  string
	}{
		{"february non-leap", 31, date(2023, 2, 10), "2023-02-28"},
		{"february leap", 31, date(2024, 2, 10), "2024-02-29"},
		{"thirty-day month", 31, date(2024, 4, 1), "2024-04-30"},
		{"day exists", 15, date(2024, 4, 20), "2024-04-15"},
		{"first of month", 1, date(2024, 12, 31), "2024-12-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defs := []models.RecurringTransaction{
				{Description: "Rent", Amount: 1200, DayOfMonth: tc.day, Category: "home", Type: models.TypeExpense},
			}
			materialized, _ := GenerateDue(defs, tc.today)
			if len(materialized) != 1 {
				t.Fatalf("expected 1 transaction, got %d", len(materialized))
			}
			if materialized[0].Date != tc.want {
				t.Errorf("date = %q, want %q", materialized[0].Date, tc.want)
			}
		})
	}
}

func TestGenerateDueSignNormalization(t *testing.T) {
	defs := []models.RecurringTransaction{
		{Description: "Rent", Amount: 80, DayOfMonth: 1, Category: "home", Type: models.TypeExpense},
		{Description: "Salary", Amount: 50, DayOfMonth: 1, Category: "work", Type: models.TypeIncome},
	}
	materialized, _ := GenerateDue(defs, date(2024, 6, 3))
	if len(materialized) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(materialized))
	}
	if materialized[0].Amount != -80 {
		t.Errorf("expense amount = %v, want -80", materialized[0].Amount)
	}
	if materialized[1].Amount != 50 {
		t.Errorf("income amount = %v, want +50", materialized[1].Amount)
	}
}

func TestGenerateDueDueness(t *testing.T) {
	today := date(2024, 4, 20)
	defs := []models.RecurringTransaction{
		{Description: "fresh", Amount: 10, DayOfMonth: 1, Type: models.TypeIncome, LastGenerated: nil},
		{Description: "stale", Amount: 10, DayOfMonth: 1, Type: models.TypeIncome, LastGenerated: strptr("2024-03")},
		{Description: "current", Amount: 10, DayOfMonth: 1, Type: models.TypeIncome, LastGenerated: strptr("2024-04")},
	}

	materialized, updated := GenerateDue(defs, today)
	if len(materialized) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(materialized))
	}
	for _, tx := range materialized {
		if tx.Description == "current" {
			t.Errorf("definition already stamped for the current month was materialized")
		}
	}
	for _, def := range updated {
		if def.LastGenerated == nil || *def.LastGenerated != "2024-04" {
			t.Errorf("definition %q not stamped with 2024-04", def.Description)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(date(2024, 4, 20)); got != "2024-04" {
		t.Errorf("MonthKey = %q, want 2024-04", got)
	}
	if got := MonthKey(date(2023, 12, 1)); got != "2023-12" {
		t.Errorf("MonthKey = %q, want 2023-12", got)
	}
}

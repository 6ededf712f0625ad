// Package finance holds the pure calculation core of the tracker: recurring
// transaction generation, dashboard aggregation and ledger filtering. Nothing
// here touches the database; callers pass request-scoped slices in and
// persist whatever comes back.
package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// MonthKey returns the YYYY-MM key identifying t's calendar month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// GenerateDue materializes one transaction for every definition that is due
// in today's month. A definition is due when LastGenerated is unset or names
// a different month; definitions already stamped with the current month pass
// through untouched and emit nothing, which is the entire idempotence guard.
//
// The day of month is clamped to the month's length (day 31 in February
// becomes the 28th or 29th) and the amount sign is derived from the type.
// materialized[i] belongs to updated[i]; persisting both is the caller's job.
func GenerateDue(definitions []models.RecurringTransaction, today time.Time) (materialized []models.Transaction, updated []models.RecurringTransaction) {
	monthKey := MonthKey(today)
	lastDay := lastDayOfMonth(today)

	for _, def := range definitions {
		if def.LastGenerated != nil && *def.LastGenerated == monthKey {
			continue
		}

		day := def.DayOfMonth
		if day > lastDay {
			day = lastDay
		}

		amount := math.Abs(def.Amount)
		if def.Type == models.TypeExpense {
			amount = -amount
		}

		materialized = append(materialized, models.Transaction{
			Description: def.Description,
			Amount:      amount,
			Date:        fmt.Sprintf("%s-%02d", monthKey, day),
			Type:        def.Type,
			Category:    def.Category,
			UserID:      def.UserID,
		})

		stamp := monthKey
		def.LastGenerated = &stamp
		updated = append(updated, def)
	}
	return materialized, updated
}

func lastDayOfMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

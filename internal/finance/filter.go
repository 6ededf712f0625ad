package finance

import (
	"strings"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

// Filters narrows a transaction listing. Empty values and the "all" sentinel
// disable the corresponding predicate; active predicates are AND-combined.
type Filters struct {
	Search string // case-insensitive substring of the description
	Type   string // exact transaction type
	Month  string // YYYY-MM prefix of the date
}

// Apply runs the active predicates over the slice in order.
func Apply(transactions []models.Transaction, f Filters) []models.Transaction {
	filtered := transactions
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		filtered = keep(filtered, func(tx models.Transaction) bool {
			return strings.Contains(strings.ToLower(tx.Description), term)
		})
	}
	if f.Type != "" && f.Type != "all" {
		filtered = keep(filtered, func(tx models.Transaction) bool {
			return tx.Type == f.Type
		})
	}
	if f.Month != "" && f.Month != "all" {
		filtered = keep(filtered, func(tx models.Transaction) bool {
			return strings.HasPrefix(tx.Date, f.Month)
		})
	}
	return filtered
}

// Paginate slices items into the requested fixed-size page and reports the
// page actually served. totalPages is never below 1, even for an empty
// collection, and a page past the end clamps to the last one.
func Paginate(items []models.Transaction, pageSize, requestedPage int) (page []models.Transaction, currentPage, totalPages int) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages = (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage = requestedPage
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], currentPage, totalPages
}

func keep(transactions []models.Transaction, pred func(models.Transaction) bool) []models.Transaction {
	kept := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if pred(tx) {
			kept = append(kept, tx)
		}
	}
	return kept
}

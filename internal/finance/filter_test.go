package finance

import (
	"testing"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{Description: "Grocery Store", Type: models.TypeExpense, Date: "2024-03-02"},
		{Description: "Salary", Type: models.TypeIncome, Date: "2024-03-05"},
		{Description: "grocery run", Type: models.TypeExpense, Date: "2024-04-01"},
		{Description: "Cinema", Type: models.TypeExpense, Date: "2024-04-12"},
	}
}

func TestApplyFilters(t *testing.T) {
	cases := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"no filters", Filters{}, []string{"Grocery Store", "Salary", "grocery run", "Cinema"}},
		{"all sentinels", Filters{Type: "all", Month: "all"}, []string{"Grocery Store", "Salary", "grocery run", "Cinema"}},
		{"search is case-insensitive", Filters{Search: "GROCERY"}, []string{"Grocery Store", "grocery run"}},
		{"type", Filters{Type: models.TypeIncome}, []string{"Salary"}},
		{"month prefix", Filters{Month: "2024-03"}, []string{"Grocery Store", "Salary"}},
		{"combined", Filters{Search: "grocery", Type: models.TypeExpense, Month: "2024-04"}, []string{"grocery run"}},
		{"no match", Filters{Search: "yacht"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(sampleLedger(), tc.filters)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d transactions, want %d", len(got), len(tc.want))
			}
			for i, want := range tc.want {
				if got[i].Description != want {
					t.Errorf("got[%d] = %q, want %q", i, got[i].Description, want)
				}
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]models.Transaction, 25)

	page, current, total := Paginate(items, 10, 1)
	if len(page) != 10 || current != 1 || total != 3 {
		t.Errorf("page 1: len=%d current=%d total=%d, want 10/1/3", len(page), current, total)
	}

	page, current, total = Paginate(items, 10, 3)
	if len(page) != 5 || current != 3 || total != 3 {
		t.Errorf("page 3: len=%d current=%d total=%d, want 5/3/3", len(page), current, total)
	}

	// Out-of-range pages clamp to the last page instead of failing.
	page, current, total = Paginate(items, 10, 99)
	if len(page) != 5 || current != 3 || total != 3 {
		t.Errorf("page 99: len=%d current=%d total=%d, want 5/3/3", len(page), current, total)
	}

	page, current, total = Paginate(items, 10, 0)
	if len(page) != 10 || current != 1 {
		t.Errorf("page 0: len=%d current=%d, want 10/1", len(page), current)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, current, total := Paginate(nil, 10, 5)
	if total != 1 {
		t.Errorf("total = %d, want 1 for an empty collection", total)
	}
	if current != 1 {
		t.Errorf("current = %d, want 1", current)
	}
	if len(page) != 0 {
		t.Errorf("page has %d items, want 0", len(page))
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	items := make([]models.Transaction, 20)
	page, _, total := Paginate(items, 10, 2)
	if total != 2 || len(page) != 10 {
		t.Errorf("len=%d total=%d, want 10/2", len(page), total)
	}
}

package filter

import (
	"testing"

	"github.com/shopspring/decimal"

	"spendlog/internal/aggregate"
	"spendlog/internal/core"
)

var now = core.NewDate(2025, 10, 11)

func fixture() []core.Expense {
	mk := func(id, title, note, category, amount string, date core.Date) core.Expense {
		return core.Expense{
			ID:       id,
			Title:    title,
			Note:     note,
			Category: category,
			Amount:   decimal.RequireFromString(amount),
			Date:     date,
		}
	}
	// Store order: newest first.
	return []core.Expense{
		mk("4", "Latte", "morning", "Food", "4.50", core.NewDate(2025, 10, 11)),  // today
		mk("3", "Groceries", "", "Food", "62.10", core.NewDate(2025, 10, 9)),     // 2 days ago
		mk("2", "Phone bill", "autopay", "Bills", "35", core.NewDate(2025, 9, 26)), // 15 days ago
		mk("1", "Shoes", "sale", "Clothes", "80", core.NewDate(2025, 8, 27)),     // 45 days ago
	}
}

func ids(items []core.Expense) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyRange(t *testing.T) {
	got := Apply(fixture(), Criteria{Range: aggregate.RangeWeek, Now: now})
	if !equalIDs(ids(got), "4", "3") {
		t.Errorf("week filter returned %v, want [4 3]", ids(got))
	}
}

func TestApplyQueryNarrowsWithinRange(t *testing.T) {
	// Text matching must not re-include records the range excluded:
	// "autopay" matches record 2, but 2 is outside the week.
	got := Apply(fixture(), Criteria{Range: aggregate.RangeWeek, Now: now, Query: "autopay"})
	if len(got) != 0 {
		t.Errorf("got %v, want nothing", ids(got))
	}

	got = Apply(fixture(), Criteria{Range: aggregate.RangeWeek, Now: now, Query: "LATTE"})
	if !equalIDs(ids(got), "4") {
		t.Errorf("case-insensitive query returned %v, want [4]", ids(got))
	}
}

func TestApplyQueryMatchesNote(t *testing.T) {
	got := Apply(fixture(), Criteria{Query: "sale"})
	if !equalIDs(ids(got), "1") {
		t.Errorf("note query returned %v, want [1]", ids(got))
	}
}

func TestApplyCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "exact match", category: "Food", want: []string{"4", "3"}},
		{name: "all sentinel", category: AllCategories, want: []string{"4", "3", "2", "1"}},
		{name: "unset", category: "", want: []string{"4", "3", "2", "1"}},
		{name: "unknown category", category: "Travel", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(fixture(), Criteria{Category: tt.category}))
			if !equalIDs(got, tt.want...) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyAmountBoundsInclusive(t *testing.T) {
	min := decimal.RequireFromString("35")
	max := decimal.RequireFromString("62.10")
	got := Apply(fixture(), Criteria{MinAmount: &min, MaxAmount: &max})
	if !equalIDs(ids(got), "3", "2") {
		t.Errorf("got %v, want [3 2] (bounds are inclusive)", ids(got))
	}
}

func TestApplyDateBoundsInclusive(t *testing.T) {
	got := Apply(fixture(), Criteria{
		DateFrom: core.NewDate(2025, 9, 26),
		DateTo:   core.NewDate(2025, 10, 9),
	})
	if !equalIDs(ids(got), "3", "2") {
		t.Errorf("got %v, want [3 2]", ids(got))
	}
}

func TestApplyComposesWithAnd(t *testing.T) {
	min := decimal.RequireFromString("10")
	got := Apply(fixture(), Criteria{
		Category:  "Food",
		Range:     aggregate.RangeWeek,
		Now:       now,
		MinAmount: &min,
	})
	if !equalIDs(ids(got), "3") {
		t.Errorf("got %v, want [3]", ids(got))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(fixture(), Criteria{})
	if !equalIDs(ids(got), "4", "3", "2", "1") {
		t.Errorf("filter must preserve store order, got %v", ids(got))
	}
}

package aggregate

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

// FallbackCategory labels records whose category is missing or blank in
// category breakdowns.
const FallbackCategory = "Other"

// CategorySum is one group in a category breakdown.
type CategorySum struct {
	Category string
	Sum      decimal.Decimal
}

// Categories groups records by category and sums their amounts. Blank
// categories fall back to FallbackCategory, non-positive amounts are
// skipped, groups that end up non-positive are dropped, and the result is
// sorted descending by sum with ties kept in first-encountered order.
//
// An empty result means "no data": consumers render a placeholder rather
// than a zero-filled chart.
func Categories(items []core.Expense) []CategorySum {
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range items {
		if e.Amount.Sign() <= 0 {
			continue
		}
		cat := strings.TrimSpace(e.Category)
		if cat == "" {
			cat = FallbackCategory
		}
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] = sums[cat].Add(e.Amount)
	}

	groups := make([]CategorySum, 0, len(order))
	for _, cat := range order {
		if sums[cat].Sign() <= 0 {
			continue
		}
		groups = append(groups, CategorySum{Category: cat, Sum: sums[cat]})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Sum.GreaterThan(groups[j].Sum)
	})
	return groups
}

// GrandTotal sums a category breakdown.
func GrandTotal(groups []CategorySum) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range groups {
		sum = sum.Add(g.Sum)
	}
	return sum
}

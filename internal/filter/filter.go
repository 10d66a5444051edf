// Package filter narrows an expense collection to the records matching a
// set of criteria. Filtering is pure and order-preserving: store order in,
// store order out.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/aggregate"
	"spendlog/internal/core"
)

// AllCategories is the category sentinel that disables category matching.
const AllCategories = "All"

// Criteria combines the active predicates. Zero-valued fields are
// inactive; active predicates compose with logical AND.
type Criteria struct {
	// Query matches case-insensitively against title and note.
	Query string

	// Category is an exact match unless it is AllCategories or empty.
	Category string

	// Range restricts by calendar window relative to Now.
	Range aggregate.Range
	Now   core.Date

	// Inclusive bounds, each ignored when nil / zero.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	DateFrom  core.Date
	DateTo    core.Date
}

// Apply returns the records matching every active criterion.
func Apply(items []core.Expense, c Criteria) []core.Expense {
	out := make([]core.Expense, 0, len(items))
	for _, e := range items {
		if c.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (c Criteria) matches(e core.Expense) bool {
	if c.Category != "" && c.Category != AllCategories && e.Category != c.Category {
		return false
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		haystack := strings.ToLower(e.Title + " " + e.Note)
		if !strings.Contains(haystack, strings.ToLower(q)) {
			return false
		}
	}
	if c.Range != "" && c.Range != aggregate.RangeAll {
		if !aggregate.InRange(e.Date, c.Range, c.Now) {
			return false
		}
	}
	if c.MinAmount != nil && e.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && e.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	if !c.DateFrom.IsZero() && e.Date.Before(c.DateFrom.Time) {
		return false
	}
	if !c.DateTo.IsZero() && e.Date.After(c.DateTo.Time) {
		return false
	}
	return true
}

package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

// MonthSum is the amount total for one calendar month.
type MonthSum struct {
	Year  int
	Month time.Month
	Sum   decimal.Decimal
}

// MonthlyTrend sums amounts per calendar month for the `months` months
// ending at now, oldest first. Months with no records report zero.
func MonthlyTrend(items []core.Expense, now core.Date, months int) []MonthSum {
	if months <= 0 {
		return nil
	}

	out := make([]MonthSum, months)
	for i := 0; i < months; i++ {
		// Anchor on the first of the month so stepping back from e.g.
		// March 31 cannot normalize past February.
		m := time.Date(now.Year(), now.Month()-time.Month(months-1-i), 1, 0, 0, 0, 0, time.UTC)
		out[i] = MonthSum{Year: m.Year(), Month: m.Month(), Sum: decimal.Zero}
	}

	for _, e := range items {
		if e.Date.IsZero() {
			continue
		}
		for i := range out {
			if e.Date.Year() == out[i].Year && e.Date.Month() == out[i].Month {
				out[i].Sum = out[i].Sum.Add(e.Amount)
				break
			}
		}
	}
	return out
}

// TagSum is the amount total attributed to one tag.
type TagSum struct {
	Tag string
	Sum decimal.Decimal
}

// TopTags sums amounts per tag, descending, capped at limit. A record
// carrying several tags contributes its full amount to each of them.
func TopTags(items []core.Expense, limit int) []TagSum {
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range items {
		for _, tag := range e.Tags {
			if tag == "" {
				continue
			}
			if _, seen := sums[tag]; !seen {
				order = append(order, tag)
			}
			sums[tag] = sums[tag].Add(e.Amount)
		}
	}

	out := make([]TagSum, 0, len(order))
	for _, tag := range order {
		out = append(out, TagSum{Tag: tag, Sum: sums[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sum.GreaterThan(out[j].Sum)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

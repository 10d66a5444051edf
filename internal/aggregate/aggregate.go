// Package aggregate computes derived views over an expense collection.
//
// Every function is pure: the reference time is an explicit parameter and
// identical inputs always produce identical outputs.
package aggregate

import (
	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

// Range selects a calendar window relative to a reference day.
type Range string

const (
	RangeToday Range = "Today"
	RangeWeek  Range = "Week"
	RangeMonth Range = "Month"
	RangeAll   Range = "All"
)

// WindowSums holds the amount sums for each calendar window.
type WindowSums struct {
	Today decimal.Decimal
	Week  decimal.Decimal
	Month decimal.Decimal
	All   decimal.Decimal
	Count int
}

// Total sums the amounts of all records. Zero for an empty collection.
func Total(items []core.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range items {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// InRange reports whether a record day falls inside the window ending at
// now. Week is the 7-day window ending at now, inclusive on both ends;
// Month means same calendar year and month, not a rolling 30 days.
func InRange(d core.Date, r Range, now core.Date) bool {
	switch r {
	case RangeToday:
		return d.SameDay(now)
	case RangeWeek:
		start := core.DateOf(now.AddDate(0, 0, -6))
		return !d.Before(start.Time) && !d.After(now.Time)
	case RangeMonth:
		return d.SameMonth(now)
	default:
		return true
	}
}

// Windows computes today/week/month/all sums against an explicit now.
func Windows(items []core.Expense, now core.Date) WindowSums {
	w := WindowSums{
		Today: decimal.Zero,
		Week:  decimal.Zero,
		Month: decimal.Zero,
		All:   decimal.Zero,
		Count: len(items),
	}
	for _, e := range items {
		w.All = w.All.Add(e.Amount)
		if InRange(e.Date, RangeToday, now) {
			w.Today = w.Today.Add(e.Amount)
		}
		if InRange(e.Date, RangeWeek, now) {
			w.Week = w.Week.Add(e.Amount)
		}
		if InRange(e.Date, RangeMonth, now) {
			w.Month = w.Month.Add(e.Amount)
		}
	}
	return w
}

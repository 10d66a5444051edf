package store

import (
	"fmt"

	"spendlog/internal/aggregate"
	"spendlog/internal/cache"
	"spendlog/internal/core"
)

const (
	trendMonths = 6
	topTagLimit = 10
)

// Report bundles the derived views a reporting consumer renders at once.
// Windows and Trend cover the whole collection; Categories and Tags cover
// the calendar month of the reference day.
type Report struct {
	Windows    aggregate.WindowSums
	Categories []aggregate.CategorySum
	Trend      []aggregate.MonthSum
	Tags       []aggregate.TagSum
}

type reportCache struct {
	lru *cache.LRU[Report]
}

func newReportCache() *reportCache {
	return &reportCache{lru: cache.NewLRU[Report](8)}
}

// Report computes the derived views for the given reference day. Results
// are memoized per (collection revision, day): any mutation bumps the
// revision and naturally invalidates the cached value.
func (s *Store) Report(now core.Date) Report {
	s.mu.Lock()
	items := cloneAll(s.items)
	rev := s.rev
	s.mu.Unlock()

	key := fmt.Sprintf("%d|%s", rev, now.String())
	if r, ok := s.reports.lru.Get(key); ok {
		return r
	}

	var monthItems []core.Expense
	for _, e := range items {
		if e.Date.SameMonth(now) {
			monthItems = append(monthItems, e)
		}
	}

	r := Report{
		Windows:    aggregate.Windows(items, now),
		Categories: aggregate.Categories(monthItems),
		Trend:      aggregate.MonthlyTrend(items, now, trendMonths),
		Tags:       aggregate.TopTags(monthItems, topTagLimit),
	}
	s.reports.lru.Set(key, r)
	return r
}

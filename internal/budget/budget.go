// Package budget manages per-category monthly spending limits.
//
// Limits persist under their own key as a JSON object mapping category to
// limit. The book is tiny and read-modify-write per operation; unlike the
// expense store there is no in-memory canonical copy to keep consistent.
package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"spendlog/internal/aggregate"
	"spendlog/internal/core"
	"spendlog/internal/kv"
	"spendlog/internal/log"
)

// Book reads and writes the budget limit map.
type Book struct {
	mu     sync.Mutex
	kv     kv.Store
	key    string
	logger *log.Logger
}

func New(adapter kv.Store, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Book{
		kv:     adapter,
		key:    kv.BudgetsKey,
		logger: logger.WithComponent(log.ComponentBudget),
	}
}

// Limits returns all configured limits. A missing or corrupt blob reads
// as no limits, same recovery stance as the expense store.
func (b *Book) Limits(ctx context.Context) (map[string]decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Set stores a limit for a category. A non-positive limit is rejected.
func (b *Book) Set(ctx context.Context, category string, limit decimal.Decimal) error {
	if category == "" {
		return fmt.Errorf("set budget: empty category")
	}
	if limit.Sign() <= 0 {
		return fmt.Errorf("set budget for %q: %w", category, core.ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	limits, err := b.load(ctx)
	if err != nil {
		return err
	}
	limits[category] = limit
	return b.save(ctx, limits)
}

// Remove drops the limit for a category. Unknown categories are a no-op.
func (b *Book) Remove(ctx context.Context, category string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	limits, err := b.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := limits[category]; !ok {
		return nil
	}
	delete(limits, category)
	if len(limits) == 0 {
		return b.kv.Remove(ctx, b.key)
	}
	return b.save(ctx, limits)
}

func (b *Book) load(ctx context.Context) (map[string]decimal.Decimal, error) {
	raw, ok, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	if !ok {
		return map[string]decimal.Decimal{}, nil
	}

	limits := map[string]decimal.Decimal{}
	if err := json.Unmarshal([]byte(raw), &limits); err != nil {
		b.logger.WarnContext(ctx, "persisted budgets are corrupt, starting empty",
			log.FieldKey, b.key, log.FieldError, err)
		return map[string]decimal.Decimal{}, nil
	}
	return limits, nil
}

func (b *Book) save(ctx context.Context, limits map[string]decimal.Decimal) error {
	// Limits serialize as plain JSON numbers, the shape consumers expect.
	out := make(map[string]json.RawMessage, len(limits))
	for cat, limit := range limits {
		out[cat] = json.RawMessage(limit.String())
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode budgets: %w", err)
	}
	if err := b.kv.Set(ctx, b.key, string(raw)); err != nil {
		return fmt.Errorf("save budgets: %w", err)
	}
	return nil
}

// Progress is how one category's month-to-date spend compares to its limit.
type Progress struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Over      bool
}

// Progress evaluates every configured limit against the record month of
// now, sorted by category name. Pure given the loaded limits.
func ComputeProgress(limits map[string]decimal.Decimal, items []core.Expense, now core.Date) []Progress {
	var monthItems []core.Expense
	for _, e := range items {
		if e.Date.SameMonth(now) {
			monthItems = append(monthItems, e)
		}
	}

	spent := make(map[string]decimal.Decimal)
	for _, g := range aggregate.Categories(monthItems) {
		spent[g.Category] = g.Sum
	}

	cats := make([]string, 0, len(limits))
	for cat := range limits {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	out := make([]Progress, 0, len(cats))
	for _, cat := range cats {
		limit := limits[cat]
		used, ok := spent[cat]
		if !ok {
			used = decimal.Zero
		}
		out = append(out, Progress{
			Category:  cat,
			Limit:     limit,
			Spent:     used,
			Remaining: limit.Sub(used),
			Over:      used.GreaterThan(limit),
		})
	}
	return out
}

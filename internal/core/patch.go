package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch is a partial update for an expense record. Nil fields are left
// untouched; ID and CreatedAt are not patchable. Clearing an optional
// field is explicit so a nil pointer stays distinguishable from "unset".
type Patch struct {
	Title    *string
	Amount   *decimal.Decimal
	Category *string
	Date     *Date
	Note     *string
	PhotoURI *string
	Tags     []string

	Recurring      *Recurrence
	ClearRecurring bool
	DueAt          *time.Time
	ClearDueAt     bool
}

// Apply merges the patch into the record, shallow-merge semantics.
func (p Patch) Apply(e *Expense) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
	if p.PhotoURI != nil {
		e.PhotoURI = *p.PhotoURI
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), p.Tags...)
	}
	if p.ClearRecurring {
		e.Recurring = nil
	} else if p.Recurring != nil {
		r := *p.Recurring
		e.Recurring = &r
	}
	if p.ClearDueAt {
		e.DueAt = nil
	} else if p.DueAt != nil {
		t := *p.DueAt
		e.DueAt = &t
	}
}

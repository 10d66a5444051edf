package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "valid date", in: "2025-10-11", want: "2025-10-11"},
		{name: "invalid month", in: "2025-13-01", wantErr: true},
		{name: "not a date", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2025, 10, 11)

	if !a.SameDay(NewDate(2025, 10, 11)) {
		t.Error("SameDay should match identical days")
	}
	if a.SameDay(NewDate(2025, 10, 12)) {
		t.Error("SameDay should not match different days")
	}
	if !a.SameMonth(NewDate(2025, 10, 1)) {
		t.Error("SameMonth should match any day in the month")
	}
	if a.SameMonth(NewDate(2024, 10, 11)) {
		t.Error("SameMonth should not match the same month of another year")
	}
}

func TestRecurrenceValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Recurrence
		wantErr bool
	}{
		{name: "weekly sunday", r: Recurrence{Every: Weekly, Day: 0}},
		{name: "weekly saturday", r: Recurrence{Every: Weekly, Day: 6}},
		{name: "weekly out of range", r: Recurrence{Every: Weekly, Day: 7}, wantErr: true},
		{name: "monthly first", r: Recurrence{Every: Monthly, Day: 1}},
		{name: "monthly clamped max", r: Recurrence{Every: Monthly, Day: 28}},
		{name: "monthly 29 rejected", r: Recurrence{Every: Monthly, Day: 29}, wantErr: true},
		{name: "monthly zero rejected", r: Recurrence{Every: Monthly, Day: 0}, wantErr: true},
		{name: "unknown unit", r: Recurrence{Every: "year", Day: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Title:  "Groceries",
		Amount: decimal.NewFromFloat(12.50),
		Date:   NewDate(2025, 10, 11),
	}

	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{name: "valid", mutate: func(e *Expense) {}},
		{name: "empty title", mutate: func(e *Expense) { e.Title = "  " }, wantErr: ErrEmptyTitle},
		{name: "zero amount", mutate: func(e *Expense) { e.Amount = decimal.Zero }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(e *Expense) { e.Amount = decimal.NewFromInt(-3) }, wantErr: ErrInvalidAmount},
		{name: "zero date", mutate: func(e *Expense) { e.Date = Date{} }, wantErr: ErrInvalidDate},
		{
			name:    "bad recurrence",
			mutate:  func(e *Expense) { e.Recurring = &Recurrence{Every: Monthly, Day: 31} },
			wantErr: ErrInvalidRecurrence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid.Clone()
			tt.mutate(&e)
			if err := e.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	e := Expense{Title: "Coffee"}
	e.Normalize()

	if e.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", e.Category, DefaultCategory)
	}
	if e.Tags == nil {
		t.Error("Tags should default to an empty list")
	}
}

func TestPatchApply(t *testing.T) {
	due := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	e := Expense{
		ID:        "100",
		Title:     "Old",
		Amount:    decimal.NewFromInt(10),
		Category:  "Food",
		Date:      NewDate(2025, 10, 1),
		CreatedAt: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC),
		Recurring: &Recurrence{Every: Weekly, Day: 2},
		DueAt:     &due,
		Tags:      []string{"a"},
	}

	newTitle := "New"
	newAmount := decimal.NewFromInt(99)
	p := Patch{
		Title:          &newTitle,
		Amount:         &newAmount,
		Tags:           []string{"b", "c"},
		ClearRecurring: true,
		ClearDueAt:     true,
	}
	p.Apply(&e)

	if e.Title != "New" || !e.Amount.Equal(newAmount) {
		t.Errorf("patched fields not applied: title=%q amount=%s", e.Title, e.Amount)
	}
	if e.ID != "100" || e.CreatedAt != time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC) {
		t.Error("ID and CreatedAt must survive a patch")
	}
	if e.Category != "Food" || e.Date.String() != "2025-10-01" {
		t.Error("unpatched fields must stay untouched")
	}
	if e.Recurring != nil || e.DueAt != nil {
		t.Error("cleared optional fields should be nil")
	}
	if len(e.Tags) != 2 || e.Tags[0] != "b" {
		t.Errorf("Tags = %v, want [b c]", e.Tags)
	}
}

func TestPatchUntouchedOptionalFields(t *testing.T) {
	e := Expense{Title: "Keep", Recurring: &Recurrence{Every: Monthly, Day: 5}}
	note := "added later"
	(Patch{Note: &note}).Apply(&e)

	if e.Recurring == nil || e.Recurring.Day != 5 {
		t.Error("recurrence must survive a patch that does not mention it")
	}
	if e.Note != "added later" {
		t.Errorf("Note = %q", e.Note)
	}
}

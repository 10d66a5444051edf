package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultCategory is assigned when a record is created without one.
	DefaultCategory = "General"

	Weekly  RecurrenceUnit = "week"
	Monthly RecurrenceUnit = "month"
)

type (
	RecurrenceUnit string

	// Date is a calendar day (day granularity, UTC midnight).
	Date struct {
		time.Time
	}

	// Recurrence describes an optional repeating schedule for an expense.
	// Day is a weekday index (0-6) for weekly schedules, or a day of month
	// clamped to 1-28 for monthly schedules so it exists in every month.
	Recurrence struct {
		Every RecurrenceUnit `json:"every"`
		Day   int            `json:"day"`
	}

	// Expense is a single dated, categorized monetary record.
	// Records are created only through the store; ID and CreatedAt are
	// assigned once and never change.
	Expense struct {
		ID        string
		Title     string
		Amount    decimal.Decimal
		Category  string
		Date      Date
		CreatedAt time.Time
		Note      string
		PhotoURI  string
		Recurring *Recurrence
		DueAt     *time.Time
		Tags      []string
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyTitle        = errors.New("empty title")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date as "YYYY-MM-DD". Zero dates format as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.YearDay() == other.YearDay()
}

// SameMonth reports whether both dates share calendar year and month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

func (r Recurrence) Validate() error {
	switch r.Every {
	case Weekly:
		if r.Day < 0 || r.Day > 6 {
			return ErrInvalidRecurrence
		}
	case Monthly:
		// Clamped to 28 so the schedule lands in every month.
		if r.Day < 1 || r.Day > 28 {
			return ErrInvalidRecurrence
		}
	default:
		return ErrInvalidRecurrence
	}
	return nil
}

// Validate checks the caller-side domain rules for a record about to be
// stored. The store itself is deliberately permissive and does not call
// this; input validation belongs to the layer accepting user input.
func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyTitle
	}
	if e.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if e.Recurring != nil {
		if err := e.Recurring.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize fills documented defaults for optional fields.
func (e *Expense) Normalize() {
	if strings.TrimSpace(e.Category) == "" {
		e.Category = DefaultCategory
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

// Clone returns a deep copy so callers can hand out records without
// sharing the tags slice.
func (e Expense) Clone() Expense {
	out := e
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.Recurring != nil {
		r := *e.Recurring
		out.Recurring = &r
	}
	if e.DueAt != nil {
		t := *e.DueAt
		out.DueAt = &t
	}
	return out
}

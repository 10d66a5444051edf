// Package core defines the expense record entity and its wire form.
//
// Records persist as a JSON array of self-describing objects. Decoding is
// deliberately forgiving: unknown fields are ignored, missing optional
// fields take their documented defaults, and a malformed amount decodes
// as zero rather than failing the whole collection.
package core

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type expenseJSON struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    json.RawMessage `json:"amount,omitempty"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	CreatedAt int64           `json:"createdAt,omitempty"`
	Note      string          `json:"note,omitempty"`
	PhotoURI  string          `json:"photoUri,omitempty"`
	Recurring *Recurrence     `json:"recurring"`
	DueAt     *string         `json:"dueAt"`
	Tags      []string        `json:"tags"`
}

// MarshalJSON encodes the record with amounts as plain JSON numbers,
// createdAt as epoch milliseconds and dates as "YYYY-MM-DD".
func (e Expense) MarshalJSON() ([]byte, error) {
	out := expenseJSON{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    json.RawMessage(e.Amount.String()),
		Category:  e.Category,
		Date:      e.Date.String(),
		Note:      e.Note,
		PhotoURI:  e.PhotoURI,
		Recurring: e.Recurring,
		Tags:      e.Tags,
	}
	if !e.CreatedAt.IsZero() {
		out.CreatedAt = e.CreatedAt.UnixMilli()
	}
	if e.DueAt != nil {
		s := e.DueAt.UTC().Format(time.RFC3339)
		out.DueAt = &s
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a record, tolerating older and partial shapes.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw expenseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Expense{
		ID:        raw.ID,
		Title:     raw.Title,
		Category:  raw.Category,
		Note:      raw.Note,
		PhotoURI:  raw.PhotoURI,
		Recurring: raw.Recurring,
		Tags:      raw.Tags,
	}

	// Amounts may be numbers or quoted numbers; anything else counts as zero.
	if len(raw.Amount) > 0 {
		if amt, err := decimal.NewFromString(trimQuotes(string(raw.Amount))); err == nil {
			e.Amount = amt
		}
	}
	if raw.Date != "" {
		if d, err := ParseDate(raw.Date); err == nil {
			e.Date = d
		}
	}
	if raw.CreatedAt != 0 {
		e.CreatedAt = time.UnixMilli(raw.CreatedAt).UTC()
	}
	if raw.DueAt != nil {
		if t, err := time.Parse(time.RFC3339, *raw.DueAt); err == nil {
			tt := t.UTC()
			e.DueAt = &tt
		}
	}

	e.Normalize()
	return nil
}

// EncodeCollection serializes records in store order.
func EncodeCollection(items []Expense) (string, error) {
	if items == nil {
		items = []Expense{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCollection parses a serialized collection. A JSON null decodes as
// the empty collection; a structurally corrupt blob returns an error for
// the caller to recover from.
func DecodeCollection(raw string) ([]Expense, error) {
	var items []Expense
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Expense{}
	}
	return items, nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

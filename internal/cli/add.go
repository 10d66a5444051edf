package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spendlog/internal/core"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title      string
		amountStr  string
		category   string
		dateStr    string
		note       string
		photoURI   string
		tags       []string
		dueStr     string
		recurEvery string
		recurDay   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildExpense(title, amountStr, category, dateStr, note, photoURI, tags, dueStr, recurEvery, recurDay)
			if err != nil {
				return err
			}
			// Validation lives here, at the input boundary. The store
			// itself is permissive and stores what it is given.
			if err := e.Validate(); err != nil {
				return fmt.Errorf("invalid expense: %w", err)
			}

			id := app.store.Add(e)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s ($%s)\n", id, e.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "expense title (required)")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "amount, e.g. 12.50 (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (default General)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().StringVar(&photoURI, "photo", "", "photo reference")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag, repeatable")
	cmd.Flags().StringVar(&dueStr, "due", "", "due timestamp, RFC 3339")
	cmd.Flags().StringVar(&recurEvery, "recur-every", "", "recurrence unit: week or month")
	cmd.Flags().IntVar(&recurDay, "recur-day", 0, "recurrence day: weekday 0-6 or day of month 1-28")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func buildExpense(title, amountStr, category, dateStr, note, photoURI string, tags []string, dueStr, recurEvery string, recurDay int) (core.Expense, error) {
	e := core.Expense{
		Title:    title,
		Category: category,
		Note:     note,
		PhotoURI: photoURI,
		Tags:     tags,
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse amount %q: %w", amountStr, core.ErrInvalidAmount)
	}
	e.Amount = amount

	if dateStr == "" {
		e.Date = today()
	} else {
		d, err := core.ParseDate(dateStr)
		if err != nil {
			return core.Expense{}, fmt.Errorf("parse date %q: %w", dateStr, err)
		}
		e.Date = d
	}

	if dueStr != "" {
		due, err := time.Parse(time.RFC3339, dueStr)
		if err != nil {
			return core.Expense{}, fmt.Errorf("parse due timestamp %q: %w", dueStr, err)
		}
		due = due.UTC()
		e.DueAt = &due
	}

	if recurEvery != "" {
		e.Recurring = &core.Recurrence{Every: core.RecurrenceUnit(recurEvery), Day: recurDay}
	}
	return e, nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spendlog/internal/core"
)

func newSetCmd(app *App) *cobra.Command {
	var (
		title          string
		amountStr      string
		category       string
		dateStr        string
		note           string
		photoURI       string
		tags           []string
		dueStr         string
		recurEvery     string
		recurDay       int
		clearRecurring bool
		clearDue       bool
	)

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			patch := core.Patch{
				ClearRecurring: clearRecurring,
				ClearDueAt:     clearDue,
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("amount") {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil || amount.Sign() <= 0 {
					return fmt.Errorf("parse amount %q: %w", amountStr, core.ErrInvalidAmount)
				}
				patch.Amount = &amount
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("date") {
				d, err := parseDateFlag("date", dateStr)
				if err != nil {
					return err
				}
				patch.Date = &d
			}
			if flags.Changed("note") {
				patch.Note = &note
			}
			if flags.Changed("photo") {
				patch.PhotoURI = &photoURI
			}
			if flags.Changed("tag") {
				patch.Tags = tags
			}
			if flags.Changed("due") {
				due, err := time.Parse(time.RFC3339, dueStr)
				if err != nil {
					return fmt.Errorf("parse due timestamp %q: %w", dueStr, err)
				}
				due = due.UTC()
				patch.DueAt = &due
			}
			if flags.Changed("recur-every") {
				r := core.Recurrence{Every: core.RecurrenceUnit(recurEvery), Day: recurDay}
				if err := r.Validate(); err != nil {
					return fmt.Errorf("invalid recurrence: %w", err)
				}
				patch.Recurring = &r
			}

			if app.store.Update(id, patch) {
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "no record with id %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new date YYYY-MM-DD")
	cmd.Flags().StringVarP(&note, "note", "n", "", "new note")
	cmd.Flags().StringVar(&photoURI, "photo", "", "new photo reference")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "replacement tag set, repeatable")
	cmd.Flags().StringVar(&dueStr, "due", "", "new due timestamp, RFC 3339")
	cmd.Flags().StringVar(&recurEvery, "recur-every", "", "recurrence unit: week or month")
	cmd.Flags().IntVar(&recurDay, "recur-day", 0, "recurrence day")
	cmd.Flags().BoolVar(&clearRecurring, "clear-recurring", false, "remove the recurrence")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "remove the due timestamp")
	return cmd
}

func parseDateFlag(name, value string) (core.Date, error) {
	d, err := core.ParseDate(value)
	if err != nil {
		return core.Date{}, fmt.Errorf("parse %s date %q: %w", name, value, err)
	}
	return d, nil
}

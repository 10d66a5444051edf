package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spendlog/internal/core"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category monthly limits",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <category> <limit>",
			Short: "Set the monthly limit for a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				limit, err := decimal.NewFromString(args[1])
				if err != nil {
					return fmt.Errorf("parse limit %q: %w", args[1], core.ErrInvalidAmount)
				}
				if err := app.budgets.Set(cmd.Context(), args[0], limit); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "budget for %s set to $%s\n", args[0], limit.StringFixed(2))
				return nil
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List configured limits",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				limits, err := app.budgets.Limits(cmd.Context())
				if err != nil {
					return err
				}
				cats := make([]string, 0, len(limits))
				for cat := range limits {
					cats = append(cats, cat)
				}
				sort.Strings(cats)

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				for _, cat := range cats {
					fmt.Fprintf(w, "%s\t$%s\n", cat, limits[cat].StringFixed(2))
				}
				w.Flush()
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <category>",
			Short: "Remove the limit for a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.budgets.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "budget for %s removed\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

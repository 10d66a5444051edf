package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spendlog/internal/budget"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show totals, category breakdown, trend and budget progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := today()
			out := cmd.OutOrStdout()
			r := app.store.Report(now)

			fmt.Fprintf(out, "Totals as of %s\n", now)
			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintf(w, "  today\t$%s\n", r.Windows.Today.StringFixed(2))
			fmt.Fprintf(w, "  week\t$%s\n", r.Windows.Week.StringFixed(2))
			fmt.Fprintf(w, "  month\t$%s\n", r.Windows.Month.StringFixed(2))
			fmt.Fprintf(w, "  all\t$%s (%d records)\n", r.Windows.All.StringFixed(2), r.Windows.Count)
			w.Flush()

			fmt.Fprintln(out, "\nSpend by category (this month)")
			if len(r.Categories) == 0 {
				fmt.Fprintln(out, "  no data")
			} else {
				w = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				for _, g := range r.Categories {
					fmt.Fprintf(w, "  %s\t$%s\n", g.Category, g.Sum.StringFixed(2))
				}
				w.Flush()
			}

			fmt.Fprintln(out, "\nMonthly trend")
			w = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			for _, m := range r.Trend {
				fmt.Fprintf(w, "  %04d-%02d\t$%s\n", m.Year, int(m.Month), m.Sum.StringFixed(2))
			}
			w.Flush()

			if len(r.Tags) > 0 {
				fmt.Fprintln(out, "\nTop tags (this month)")
				w = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				for _, tg := range r.Tags {
					fmt.Fprintf(w, "  #%s\t$%s\n", tg.Tag, tg.Sum.StringFixed(2))
				}
				w.Flush()
			}

			limits, err := app.budgets.Limits(cmd.Context())
			if err != nil {
				return fmt.Errorf("load budgets: %w", err)
			}
			if len(limits) > 0 {
				fmt.Fprintln(out, "\nBudgets (this month)")
				w = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				for _, p := range budget.ComputeProgress(limits, app.store.Items(), now) {
					status := fmt.Sprintf("$%s left", p.Remaining.StringFixed(2))
					if p.Over {
						status = fmt.Sprintf("over by $%s", p.Remaining.Neg().StringFixed(2))
					}
					fmt.Fprintf(w, "  %s\t$%s / $%s\t%s\n",
						p.Category, p.Spent.StringFixed(2), p.Limit.StringFixed(2), status)
				}
				w.Flush()
			}
			return nil
		},
	}
}

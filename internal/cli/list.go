package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spendlog/internal/aggregate"
	"spendlog/internal/filter"
)

func newListCmd(app *App) *cobra.Command {
	var (
		query     string
		category  string
		rangeName string
		minStr    string
		maxStr    string
		fromStr   string
		toStr     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			crit := filter.Criteria{
				Query:    query,
				Category: category,
				Now:      today(),
			}

			r, err := parseRange(rangeName)
			if err != nil {
				return err
			}
			crit.Range = r

			if minStr != "" {
				min, err := decimal.NewFromString(minStr)
				if err != nil {
					return fmt.Errorf("parse min amount %q: %w", minStr, err)
				}
				crit.MinAmount = &min
			}
			if maxStr != "" {
				max, err := decimal.NewFromString(maxStr)
				if err != nil {
					return fmt.Errorf("parse max amount %q: %w", maxStr, err)
				}
				crit.MaxAmount = &max
			}
			if fromStr != "" {
				if crit.DateFrom, err = parseDateFlag("from", fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				if crit.DateTo, err = parseDateFlag("to", toStr); err != nil {
					return err
				}
			}

			snap := app.store.Snapshot()
			matched := filter.Apply(snap.Items, crit)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTITLE\tCATEGORY\tAMOUNT\tTAGS")
			for _, e := range matched {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\t%s\n",
					e.ID, e.Date, e.Title, e.Category, e.Amount.StringFixed(2), strings.Join(e.Tags, ","))
			}
			w.Flush()
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records, total $%s\n",
				len(matched), len(snap.Items), aggregate.Total(matched).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "substring match on title and note")
	cmd.Flags().StringVarP(&category, "category", "c", filter.AllCategories, "exact category match")
	cmd.Flags().StringVarP(&rangeName, "range", "r", "all", "today, week, month or all")
	cmd.Flags().StringVar(&minStr, "min", "", "minimum amount, inclusive")
	cmd.Flags().StringVar(&maxStr, "max", "", "maximum amount, inclusive")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD, inclusive")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD, inclusive")
	return cmd
}

func parseRange(name string) (aggregate.Range, error) {
	switch strings.ToLower(name) {
	case "", "all":
		return aggregate.RangeAll, nil
	case "today":
		return aggregate.RangeToday, nil
	case "week":
		return aggregate.RangeWeek, nil
	case "month":
		return aggregate.RangeMonth, nil
	default:
		return "", fmt.Errorf("invalid range %q: must be today, week, month or all", name)
	}
}

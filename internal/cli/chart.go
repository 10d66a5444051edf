package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendlog/internal/aggregate"
	"spendlog/internal/chart"
	"spendlog/internal/filter"
)

func newChartCmd(app *App) *cobra.Command {
	var (
		output    string
		rangeName string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the category donut chart as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(rangeName)
			if err != nil {
				return err
			}

			items := filter.Apply(app.store.Items(), filter.Criteria{Range: r, Now: today()})
			groups := aggregate.Categories(items)
			svg := chart.SVG(aggregate.Sectors(groups), aggregate.GrandTotal(groups))

			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), svg)
				return nil
			}
			if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sectors)\n", output, len(groups))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVarP(&rangeName, "range", "r", "month", "today, week, month or all")
	return cmd
}

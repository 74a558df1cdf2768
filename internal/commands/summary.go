package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/report"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate figures across all stored months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			months, err := e.store.Months()
			if err != nil {
				return err
			}
			if len(months) == 0 {
				fmt.Println("No transactions stored yet.")
				return nil
			}

			sum := report.SummarizeAll(months, report.Options{Exclude: e.cfg.ExcludeKeywords})

			fmt.Printf("Summary across %d months\n", len(months))
			fmt.Printf("  Income: %s\n", sum.TotalIncome.StringFixed(2))
			fmt.Printf("  Spent:  %s\n", sum.TotalSpent.StringFixed(2))
			printCategoryTotals(sum)
			return nil
		},
	}
}

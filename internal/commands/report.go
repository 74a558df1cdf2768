package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/report"
)

func newReportCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "report <yyyy-mm>",
		Short: "Show the monthly report for one bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			return runReport(e, args[0], full)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "list every transaction")

	return cmd
}

func runReport(e *env, key string, full bool) error {
	// Screen-focus hook: apply any pending rule change before reading.
	if _, err := e.pipeline.RecategorizeIfRulesChanged(key); err != nil {
		return err
	}

	months, err := e.store.Months()
	if err != nil {
		return err
	}
	txns, ok := months[key]
	if !ok {
		return fmt.Errorf("no transactions stored for %s", key)
	}

	sum := report.Summarize(txns, report.Options{Exclude: e.cfg.ExcludeKeywords})

	fmt.Printf("Report for %s\n", key)
	fmt.Printf("  Income: %s\n", sum.TotalIncome.StringFixed(2))
	fmt.Printf("  Spent:  %s\n", sum.TotalSpent.StringFixed(2))
	printCategoryTotals(sum)

	if full {
		fmt.Println("Transactions:")
		for _, t := range txns {
			fmt.Printf("  %s  %-40s %10s  %s\n", t.Date, t.Description, t.Amount.StringFixed(2), t.Category)
		}
	}
	return nil
}

func printCategoryTotals(sum report.Summary) {
	if len(sum.CategoryTotals) == 0 {
		return
	}

	cats := make([]string, 0, len(sum.CategoryTotals))
	for cat := range sum.CategoryTotals {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	fmt.Println("By category:")
	for _, cat := range cats {
		line := fmt.Sprintf("  %-20s %10s", cat, sum.CategoryTotals[cat].StringFixed(2))
		if pct, ok := sum.Percentages[cat]; ok {
			line += fmt.Sprintf("  %s%%", pct.StringFixed(2))
		}
		fmt.Println(line)
	}
}

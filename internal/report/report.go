// Package report computes spending summaries over stored transactions.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/financas-dev/financas/internal/model"
)

// Options controls aggregation.
type Options struct {
	// Exclude lists case-insensitive substrings of descriptions that
	// never contribute to totals (payment receipts, statement fees).
	Exclude []string
}

// Summary holds the aggregate figures for a set of transactions.
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalSpent     decimal.Decimal // sum of negative amounts; zero or negative
	CategoryTotals map[string]decimal.Decimal
	// Percentages is abs(category)/abs(spent)*100 rounded to two
	// decimals, per category. Empty when nothing was spent.
	Percentages map[string]decimal.Decimal
	Count       int // transactions counted after exclusion
}

var hundred = decimal.NewFromInt(100)

// Summarize aggregates one bucket's transactions: income is the sum of
// positive amounts, spend the sum of negative amounts, with per-category
// spend totals. Excluded descriptions are skipped entirely, so the
// category totals always sum to the spend total.
func Summarize(txns []model.Transaction, opts Options) Summary {
	sum := Summary{
		TotalIncome:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	for _, t := range txns {
		if excluded(t.Description, opts.Exclude) {
			continue
		}
		sum.Count++

		if t.Amount.IsNegative() {
			sum.TotalSpent = sum.TotalSpent.Add(t.Amount)
			total, ok := sum.CategoryTotals[t.Category]
			if !ok {
				total = decimal.Zero
			}
			sum.CategoryTotals[t.Category] = total.Add(t.Amount)
		} else {
			sum.TotalIncome = sum.TotalIncome.Add(t.Amount)
		}
	}

	sum.Percentages = percentages(sum.CategoryTotals, sum.TotalSpent)
	return sum
}

// SummarizeAll flattens every bucket in sorted key order and aggregates
// the whole store (the home screen view).
func SummarizeAll(months map[string][]model.Transaction, opts Options) Summary {
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var all []model.Transaction
	for _, key := range keys {
		all = append(all, months[key]...)
	}
	return Summarize(all, opts)
}

// percentages returns each category's share of total spend. A zero
// total yields no percentages rather than a division by zero.
func percentages(totals map[string]decimal.Decimal, spent decimal.Decimal) map[string]decimal.Decimal {
	pct := make(map[string]decimal.Decimal)
	if spent.IsZero() {
		return pct
	}
	for cat, total := range totals {
		pct[cat] = total.Abs().Div(spent.Abs()).Mul(hundred).Round(2)
	}
	return pct
}

func excluded(description string, terms []string) bool {
	lower := strings.ToLower(description)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

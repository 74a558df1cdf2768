package feed

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-dev/financas/internal/id"
	"github.com/financas-dev/financas/internal/model"
)

// CardParser parses credit card statement exports
// (date,title,amount with ISO dates).
type CardParser struct{}

const (
	cardDateFormat = "2006-01-02"
	cardColDate    = "date"
	cardColTitle   = "title"
	cardColAmount  = "amount"
)

// Format returns the parser name.
func (p *CardParser) Format() string { return "card" }

// Parse reads a card CSV and returns Transactions in source row order.
// Spend is normalized to negative (absolute value, then negated). Rows
// whose date fails to parse come back with an empty date; callers filter
// them with ValidOnly before storing.
func (p *CardParser) Parse(r io.Reader) ([]model.Transaction, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range rows.recs {
		date := normalizeDate(rows.field(rec, cardColDate), cardDateFormat)
		desc := rows.field(rec, cardColTitle)
		amount := parseAmount(rows.field(rec, cardColAmount)).Abs().Neg()

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Identifier:  id.Synthesize(date, desc, amount, i),
		})
	}
	return txns, nil
}

// isoDateFormat is the normalized date form all feeds emit.
const isoDateFormat = "2006-01-02"

// normalizeDate parses a source date and re-emits it as ISO yyyy-mm-dd.
// Unparsable dates become "", which marks the row invalid.
func normalizeDate(s, layout string) string {
	t, err := time.Parse(layout, s)
	if err != nil {
		return ""
	}
	return t.Format(isoDateFormat)
}

// parseAmount coerces a source amount field to a decimal. A decimal
// comma is accepted alongside the dot; missing or unparsable amounts
// default to zero.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

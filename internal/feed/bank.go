package feed

import (
	"io"

	"github.com/financas-dev/financas/internal/model"
)

// BankParser parses bank statement exports
// (Data,Descrição,Valor,Identificador with dd/mm/yyyy dates).
type BankParser struct{}

const (
	bankDateFormat = "02/01/2006"
	bankColDate    = "data"
	bankColDesc    = "descrição"
	bankColAmount  = "valor"
	bankColID      = "identificador"
)

// Format returns the parser name.
func (p *BankParser) Format() string { return "bank" }

// Parse reads a bank CSV and returns Transactions in source row order.
// The original sign is preserved and the flow type is derived from it:
// inflow when the amount is zero or positive, outflow otherwise. The
// identifier comes from the source column and may be empty, in which
// case the batch cannot be deduplicated.
func (p *BankParser) Parse(r io.Reader) ([]model.Transaction, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, rec := range rows.recs {
		amount := parseAmount(rows.field(rec, bankColAmount))

		flow := model.TypeInflow
		if amount.IsNegative() {
			flow = model.TypeOutflow
		}

		txns = append(txns, model.Transaction{
			Date:        normalizeDate(rows.field(rec, bankColDate), bankDateFormat),
			Description: rows.field(rec, bankColDesc),
			Amount:      amount,
			Type:        flow,
			Identifier:  rows.field(rec, bankColID),
		})
	}
	return txns, nil
}

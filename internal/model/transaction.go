package model

import (
	"github.com/shopspring/decimal"
)

// Flow direction for bank statement rows. Card statement rows carry no
// type; their amounts are always normalized to negative-for-spend.
const (
	TypeInflow  = "inflow"
	TypeOutflow = "outflow"
)

// Transaction is one normalized statement row.
type Transaction struct {
	Date        string          `json:"date"` // ISO yyyy-mm-dd; empty when the source date did not parse
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // negative = spend
	Type        string          `json:"type,omitempty"`
	Category    string          `json:"category"`
	Identifier  string          `json:"identifier"`
}

// Valid reports whether the source date parsed. Invalid transactions are
// never stored.
func (t Transaction) Valid() bool {
	return t.Date != ""
}

// BucketKey returns the year-month key ("2024-11") for a valid
// transaction, or "" when the date is missing.
func (t Transaction) BucketKey() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

// Package id builds the deduplication identifiers and bucket keys used
// by the import pipeline.
package id

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financas-dev/financas/internal/model"
)

// Synthesize builds a batch-local identifier for a row without a
// source-provided one: "date-description-amount-rowIndex". The row index
// guarantees uniqueness within one import batch.
func Synthesize(date, description string, amount decimal.Decimal, row int) string {
	return fmt.Sprintf("%s-%s-%s-%d", date, description, amount.String(), row)
}

// BatchKey returns the deduplication key for an import batch: the first
// valid transaction's identifier. An empty key means the batch cannot be
// deduplicated and is treated as always-new.
func BatchKey(txns []model.Transaction) string {
	for _, t := range txns {
		if t.Valid() {
			return t.Identifier
		}
	}
	return ""
}

// BucketKey returns the year-month key for an ISO date ("2024-11-05" ->
// "2024-11").
func BucketKey(isoDate string) (string, error) {
	if len(isoDate) < 7 || isoDate[4] != '-' {
		return "", fmt.Errorf("invalid ISO date %q", isoDate)
	}
	return isoDate[:7], nil
}

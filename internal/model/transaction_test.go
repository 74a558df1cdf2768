package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValid(t *testing.T) {
	assert.True(t, Transaction{Date: "2024-11-05"}.Valid())
	assert.False(t, Transaction{}.Valid(), "empty date marks an unparsable row")
}

func TestTransactionBucketKey(t *testing.T) {
	assert.Equal(t, "2024-11", Transaction{Date: "2024-11-05"}.BucketKey())
	assert.Empty(t, Transaction{}.BucketKey())
}

func TestTransactionJSON_OmitsEmptyType(t *testing.T) {
	txn := Transaction{
		Date:        "2024-11-05",
		Description: "UBER TRIP",
		Amount:      decimal.NewFromFloat(-25),
		Category:    "Transporte",
		Identifier:  "2024-11-05-UBER TRIP--25-0",
	}

	data, err := json.Marshal(txn)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"type"`)

	var back Transaction
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, txn.Description, back.Description)
	assert.True(t, txn.Amount.Equal(back.Amount))
}

func TestCategoryHasKeyword(t *testing.T) {
	cat := Category{Name: "Transporte", Keywords: []string{"uber", "posto"}}

	assert.True(t, cat.HasKeyword("uber"))
	assert.True(t, cat.HasKeyword("UBER"), "keyword lookup is case-insensitive")
	assert.False(t, cat.HasKeyword("ifood"))
}

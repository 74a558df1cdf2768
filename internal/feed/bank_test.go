package feed

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financas-dev/financas/internal/model"
)

func TestBankParser_Parse(t *testing.T) {
	data, err := os.ReadFile("testdata/bank_statement.csv")
	require.NoError(t, err)

	p := &BankParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txns, 5)

	salary := txns[0]
	assert.Equal(t, "2024-11-05", salary.Date, "dd/mm/yyyy dates are normalized to ISO")
	assert.Equal(t, "Transferência recebida - Salário", salary.Description)
	assert.Equal(t, "3500.00", salary.Amount.StringFixed(2))
	assert.Equal(t, model.TypeInflow, salary.Type)
	assert.Equal(t, "64f1a2b3-0001", salary.Identifier)
}

func TestBankParser_SignPreservedAndTyped(t *testing.T) {
	data, err := os.ReadFile("testdata/bank_statement.csv")
	require.NoError(t, err)

	p := &BankParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	uber := txns[1]
	assert.Equal(t, "-25.00", uber.Amount.StringFixed(2))
	assert.Equal(t, model.TypeOutflow, uber.Type)

	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			assert.Equal(t, model.TypeOutflow, txn.Type)
		} else {
			assert.Equal(t, model.TypeInflow, txn.Type)
		}
	}
}

func TestBankParser_InvalidDate(t *testing.T) {
	data, err := os.ReadFile("testdata/bank_statement.csv")
	require.NoError(t, err)

	p := &BankParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// 31/02/2024 does not exist.
	assert.False(t, txns[3].Valid())
	assert.Len(t, ValidOnly(txns), 4)
}

func TestBankParser_EmptyIdentifier(t *testing.T) {
	csv := "Data,Descrição,Valor,Identificador\n" +
		"05/11/2024,Sem identificador,-10.00,\n"

	p := &BankParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Empty(t, txns[0].Identifier)
}

func TestBankParser_HeaderCaseInsensitive(t *testing.T) {
	csv := "data,descrição,valor,identificador\n" +
		"05/11/2024,Minúsculas,-10.00,abc-1\n"

	p := &BankParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "2024-11-05", txns[0].Date)
	assert.Equal(t, "abc-1", txns[0].Identifier)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("card"))
	assert.NotNil(t, r.Get("BANK"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("ofx"))
	assert.Equal(t, []string{"bank", "card"}, r.Formats())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CardParser{})
	assert.Panics(t, func() { r.Register(&CardParser{}) })
}

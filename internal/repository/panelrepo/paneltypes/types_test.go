package paneltypes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpanel/finpanel-client/internal/types"
)

func Test_EntryResponseInstallmentMapping(t *testing.T) {
	plain := EntryResponse{
		Description:  "Aluguel",
		DueDate:      "2026-09-05",
		Type:         "DESPESA",
		Status:       "PENDENTE",
		Installment:  1,
		Installments: 1,
	}.ToDomain()
	assert.Nil(t, plain.Installment)

	split := EntryResponse{
		Description:  "Notebook",
		DueDate:      "2026-09-05",
		Type:         "DESPESA",
		Status:       "PENDENTE",
		Split:        true,
		Installment:  3,
		Installments: 12,
	}.ToDomain()
	require.NotNil(t, split.Installment)
	assert.Equal(t, 3, split.Installment.Number)
	assert.Equal(t, 12, split.Installment.Total)
}

func Test_FromCreateInputDefaults(t *testing.T) {
	req := FromCreateInput(types.CreateEntryInput{
		Description: "Internet",
		Amount:      decimal.NewFromInt(100),
		DueDate:     "2026-09-15",
		Type:        types.Income,
		CategoryID:  2,
	})

	assert.Equal(t, int64(1), req.ContactID)
	assert.Equal(t, int64(1), req.BankAccountID)
	assert.False(t, req.Split)
	assert.Equal(t, 1, req.Installments)
	assert.Equal(t, "RECEITA", req.Type)
}

func Test_FromCreateInputSplitEntries(t *testing.T) {
	req := FromCreateInput(types.CreateEntryInput{
		Description:  "Sofá",
		Amount:       decimal.NewFromInt(1200),
		DueDate:      "2026-09-15",
		Type:         types.Expense,
		CategoryID:   2,
		Installments: 6,
	})

	assert.True(t, req.Split)
	assert.Equal(t, 6, req.Installments)
}

package trialbalance

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

func TestClassify_PartitionsByCategory(t *testing.T) {
	sections, err := Classify(Sample())
	require.NoError(t, err)

	assert.Len(t, sections[model.CategoryAsset], 4)
	assert.Len(t, sections[model.CategoryLiability], 1)
	assert.Len(t, sections[model.CategoryEquity], 1)
	assert.Len(t, sections[model.CategoryRevenue], 1)
	assert.Len(t, sections[model.CategoryExpense], 1)
	assert.Len(t, sections[model.CategoryNonCash], 1)

	// Input order survives within a section.
	assets := sections[model.CategoryAsset]
	assert.Equal(t, "Cash", assets[0].Name)
	assert.Equal(t, "Equipment", assets[3].Name)
}

func TestClassify_UnknownCategory(t *testing.T) {
	accounts := []model.Account{
		{Name: "Cash", Category: model.CategoryAsset, Amount: decimal.NewFromInt(100)},
		{Name: "Mystery", Category: "Contra-Asset", Amount: decimal.NewFromInt(50)},
	}

	_, err := Classify(accounts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), "Mystery")
}

func TestCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, Sample()))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(Sample()))

	assert.Equal(t, "Accounts Receivable", got[1].Name)
	assert.Equal(t, model.CategoryNonCash, got[8].Category)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(5000)))
}

func TestReadAccounts_BadAmount(t *testing.T) {
	in := bytes.NewBufferString("account,type,amount\nCash,Asset,oops\n")
	_, err := ReadAccounts(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

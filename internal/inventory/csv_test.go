package inventory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePurchaseLines(t *testing.T) {
	layers, err := ParsePurchaseLines("10, 5\n15, 6\n\n20, 7\n")
	require.NoError(t, err)
	require.Len(t, layers, 3)

	assert.True(t, layers[0].Qty.Equal(dec("10")))
	assert.True(t, layers[0].UnitCost.Equal(dec("5")))
	assert.True(t, layers[2].UnitCost.Equal(dec("7")))
}

func TestParsePurchaseLines_Malformed(t *testing.T) {
	_, err := ParsePurchaseLines("10 5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, err = ParsePurchaseLines("10, x")
	require.Error(t, err)
}

func TestParseSaleLines(t *testing.T) {
	got, err := ParseSaleLines("20\n\n10\n")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(dec("20")))
	assert.True(t, got[1].Equal(dec("10")))
}

func TestPurchasesCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePurchases(&buf, SamplePurchases()))

	layers, err := ReadPurchases(&buf)
	require.NoError(t, err)
	require.Len(t, layers, 3)
	assert.True(t, layers[1].Qty.Equal(dec("15")))
}

func TestSalesCSV_PreservesEventOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSales(&buf, sales("20", "10", "3")))

	got, err := ReadSales(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Equal(dec("20")))
	assert.True(t, got[2].Equal(dec("3")))
}

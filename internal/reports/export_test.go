package reports

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	pct := 50.0
	sheet := TrendSheet([]TrendRow{
		{CustomerID: 1, CustomerName: "Sunshine Cafe", ProductID: 3, ProductName: "Organic Rice 5kg",
			EarlierQty: 10, RecentQty: 15, EarlierOrders: 1, RecentOrders: 1, QtyChange: 5,
			ChangePercentage: &pct, Trend: TrendIncreasing},
		{CustomerID: 1, CustomerName: "Sunshine Cafe", ProductID: 4, ProductName: "Olive Oil 1L",
			RecentQty: 2, RecentOrders: 1, QtyChange: 2, Trend: TrendIncreasing},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sheet))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Customer trends"}, f.GetSheetList())
	rows, err := f.GetRows("Customer trends")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Customer ID", rows[0][0])
	assert.Equal(t, "Organic Rice 5kg", rows[1][3])
	assert.Equal(t, "50", rows[1][9])
	assert.Equal(t, "INCREASING", rows[1][10])
	assert.Equal(t, "", rows[2][9])
}

func TestSummarySheet(t *testing.T) {
	s := SummarySheet(Summary{TotalProducts: 5, TotalInventoryValue: decimal.RequireFromString("1234.50")})
	require.Len(t, s.Rows, 5)
	assert.Equal(t, 1234.5, cellValue(s.Rows[2][1]))
	assert.Equal(t, int64(5), s.Rows[0][1])
}

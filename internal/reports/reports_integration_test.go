//go:build integration

package reports_test

import (
	"context"
	"math"
	"testing"
	"time"

	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"
	"inventory-backend/internal/reports"
	"inventory-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsOnEmptyStore(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	low, err := reports.LowStock(ctx, db, reports.LowStockFilter{})
	require.NoError(t, err)
	assert.NotNil(t, low)
	assert.Empty(t, low)

	top, err := reports.TopSelling(ctx, db, reports.TopSellingFilter{})
	require.NoError(t, err)
	assert.Empty(t, top)

	dist, err := reports.Distribution(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, dist.Total)

	sum, err := reports.BuildSummary(ctx, db, time.Now())
	require.NoError(t, err)
	assert.True(t, sum.TotalInventoryValue.IsZero())

	trends, err := reports.CustomerTrends(ctx, db, reports.TrendFilter{})
	require.NoError(t, err)
	assert.Empty(t, trends)
}

func TestReports(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	products := make([]models.Product, 0, 5)
	for i, stock := range []int{50, 150, 350, 99, 300} {
		products = append(products, testutil.CreateProduct(t, db, []string{"Rice", "Oil", "Flour", "Sugar", "Salt"}[i], stock, "2.00"))
	}
	rice, oil, flour := products[0], products[1], products[2]

	t.Run("stock distribution", func(t *testing.T) {
		d, err := reports.Distribution(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, reports.StockDistribution{Critical: 2, Low: 1, Sufficient: 2, Total: 5}, d)
	})

	t.Run("low stock by reorder level and by threshold", func(t *testing.T) {
		rows, err := reports.LowStock(ctx, db, reports.LowStockFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 50, rows[0].StockQuantity)
		assert.Equal(t, 99, rows[1].StockQuantity)
		assert.Equal(t, reports.BandCritical, rows[0].Band)

		rows, err = reports.LowStock(ctx, db, reports.LowStockFilter{Threshold: 200, Limit: 2})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 99, rows[1].StockQuantity)
	})

	suppliers := []models.Supplier{
		testutil.CreateSupplier(t, db, "A Foods"),
		testutil.CreateSupplier(t, db, "B Foods"),
		testutil.CreateSupplier(t, db, "C Foods"),
	}
	for i, s := range suppliers {
		_, err := ledger.CreatePurchase(ctx, db, ledger.PurchaseInput{
			SupplierID:   s.ID,
			Status:       models.PurchaseCompleted,
			PurchaseDate: now.AddDate(0, -i, 0),
			Items:        []ledger.ItemInput{{ProductID: flour.ID, Quantity: 10 * (i + 1), UnitPrice: testutil.Dec("1.00")}},
		})
		require.NoError(t, err)
	}
	_, err := ledger.CreatePurchase(ctx, db, ledger.PurchaseInput{
		SupplierID: suppliers[0].ID,
		Status:     models.PurchasePending,
		Items:      []ledger.ItemInput{{ProductID: oil.ID, Quantity: 5, UnitPrice: testutil.Dec("1.00")}},
	})
	require.NoError(t, err)

	t.Run("supply risk", func(t *testing.T) {
		rows, err := reports.SupplyRisk(ctx, db, reports.SupplyRiskFilter{})
		require.NoError(t, err)
		byID := map[uint]reports.SupplyRiskRow{}
		for _, r := range rows {
			byID[r.ProductID] = r
		}
		assert.Equal(t, reports.RiskCritical, byID[rice.ID].RiskLevel)
		assert.Equal(t, reports.RiskHigh, byID[oil.ID].RiskLevel)
		assert.Equal(t, 3, byID[flour.ID].SupplierCount)
		assert.Equal(t, reports.RiskLow, byID[flour.ID].RiskLevel)
		assert.Equal(t, flour.ID, rows[len(rows)-1].ProductID)

		onlyCompleted, err := reports.SupplyRisk(ctx, db, reports.SupplyRiskFilter{Status: models.PurchaseCompleted, Risk: reports.RiskHigh})
		require.NoError(t, err)
		assert.Empty(t, onlyCompleted)
	})

	t.Run("purchase forecast", func(t *testing.T) {
		rows, err := reports.PurchaseForecast(ctx, db, reports.ForecastFilter{}, now)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, reports.PriorityUrgent, rows[0].PurchasePriority)

		var f reports.ForecastRow
		for _, r := range rows {
			if r.ProductID == flour.ID {
				f = r
			}
		}
		assert.Equal(t, int64(3), f.TotalPurchases)
		require.NotNil(t, f.ForecastedMonthlyQty)
		assert.Equal(t, int64(20), *f.ForecastedMonthlyQty)
		assert.Equal(t, "40.00", f.EstimatedMonthlyCost.Decimal.StringFixed(2))
		require.NotNil(t, f.DaysSincePurchase)
		assert.Equal(t, int64(0), *f.DaysSincePurchase)
		require.NotNil(t, f.AvgDaysBetweenPurchases)
		assert.Equal(t, daysBetweenPurchases(now, now.AddDate(0, -1, 0), now.AddDate(0, -2, 0)), *f.AvgDaysBetweenPurchases)

		var o reports.ForecastRow
		for _, r := range rows {
			if r.ProductID == oil.ID {
				o = r
			}
		}
		assert.Zero(t, o.TotalPurchases, "pending purchases are not history")

		wide, err := reports.PurchaseForecast(ctx, db, reports.ForecastFilter{AllStatuses: true}, now)
		require.NoError(t, err)
		for _, r := range wide {
			if r.ProductID == oil.ID {
				assert.Equal(t, int64(1), r.TotalPurchases)
			}
		}
	})

	cafe := testutil.CreateCustomer(t, db, "Sunshine Cafe")
	order := func(qty int, date time.Time, status models.OrderStatus) {
		_, err := ledger.CreateOrder(ctx, db, ledger.OrderInput{
			CustomerID: cafe.ID,
			OrderDate:  date,
			Status:     status,
			Items:      []ledger.ItemInput{{ProductID: flour.ID, Quantity: qty, UnitPrice: testutil.Dec("3.00")}},
		})
		require.NoError(t, err)
	}
	order(10, now.AddDate(0, 0, -30), models.OrderCompleted)
	order(15, now.AddDate(0, 0, -1), models.OrderCompleted)
	order(40, now.AddDate(0, 0, -2), models.OrderPending)

	t.Run("customer trends", func(t *testing.T) {
		rows, err := reports.CustomerTrends(ctx, db, reports.TrendFilter{CustomerID: cafe.ID})
		require.NoError(t, err)
		require.Len(t, rows, 1)

		r := rows[0]
		assert.Equal(t, int64(10), r.EarlierQty)
		assert.Equal(t, int64(15), r.RecentQty)
		assert.Equal(t, int64(5), r.QtyChange)
		require.NotNil(t, r.ChangePercentage)
		assert.Equal(t, 50.0, *r.ChangePercentage)
		assert.Equal(t, reports.TrendIncreasing, r.Trend)

		none, err := reports.CustomerTrends(ctx, db, reports.TrendFilter{Trend: reports.TrendDeclining})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("top selling counts every order status", func(t *testing.T) {
		rows, err := reports.TopSelling(ctx, db, reports.TopSellingFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(65), rows[0].TotalSold)
		assert.Equal(t, "195.00", rows[0].TotalRevenue.StringFixed(2))
		assert.Equal(t, int64(3), rows[0].OrderCount)

		completed, err := reports.TopSelling(ctx, db, reports.TopSellingFilter{Status: models.OrderCompleted})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, int64(25), completed[0].TotalSold)
	})

	t.Run("summary", func(t *testing.T) {
		order(5, now.AddDate(0, 0, -3), models.OrderCancelled)
		order(5, now.AddDate(1, 0, 0), models.OrderCompleted)

		s, err := reports.BuildSummary(ctx, db, now)
		require.NoError(t, err)
		assert.Equal(t, int64(5), s.TotalProducts)
		assert.Equal(t, int64(2), s.LowStockCount)

		// rice 50, oil 155, flour 350+60-75, sugar 99, salt 300, all at 2.00
		assert.Equal(t, "1878.00", s.TotalInventoryValue.StringFixed(2))

		count, revenue := ordersThisYear(now)
		assert.Equal(t, count, s.YTDOrdersCount)
		assert.Equal(t, revenue.StringFixed(2), s.YTDRevenue.StringFixed(2))
	})
}

// ordersThisYear counts and sums the completed and pending test orders dated
// from January 1st of now's year. Cancelled and next-year orders never count.
func ordersThisYear(now time.Time) (int64, decimal.Decimal) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	var n int64
	revenue := decimal.Zero
	for _, o := range []struct{ days, qty int }{{-30, 10}, {-1, 15}, {-2, 40}} {
		if !now.AddDate(0, 0, o.days).Before(start) {
			n++
			revenue = revenue.Add(decimal.NewFromInt(int64(o.qty * 3)))
		}
	}
	return n, revenue
}

// daysBetweenPurchases spreads the span between the first and last date
// over the calendar months the dates fall in.
func daysBetweenPurchases(dates ...time.Time) int64 {
	first, last := dates[0], dates[0]
	months := map[string]bool{}
	for _, d := range dates {
		months[d.Format("2006-01")] = true
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	avg := last.Sub(first) / time.Duration(len(months))
	return int64(math.Round(avg.Hours() / 24))
}

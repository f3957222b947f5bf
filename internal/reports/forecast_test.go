package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastDerivedFields(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	first := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	last := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	r := forecast(forecastAgg{
		ProductID:         7,
		StockQuantity:     120,
		ReorderLevel:      100,
		UnitPrice:         decimal.RequireFromString("12.50"),
		TotalPurchases:    4,
		AvgPurchaseQty:    decimal.NewNullDecimal(decimal.RequireFromString("42.5")),
		FirstPurchaseDate: &first,
		LastPurchaseDate:  &last,
		PurchaseMonths:    3,
	}, now)

	require.NotNil(t, r.ForecastedMonthlyQty)
	assert.Equal(t, int64(43), *r.ForecastedMonthlyQty)
	assert.Equal(t, "537.50", r.EstimatedMonthlyCost.Decimal.StringFixed(2))
	require.NotNil(t, r.DaysSincePurchase)
	assert.Equal(t, int64(20), *r.DaysSincePurchase)
	require.NotNil(t, r.AvgDaysBetweenPurchases)
	// 152 days across 3 months
	assert.Equal(t, int64(51), *r.AvgDaysBetweenPurchases)
	assert.Equal(t, PrioritySoon, r.PurchasePriority)
}

func TestForecastWithoutHistory(t *testing.T) {
	r := forecast(forecastAgg{ProductID: 1, StockQuantity: 10, ReorderLevel: 100}, time.Now())

	assert.Nil(t, r.ForecastedMonthlyQty)
	assert.Nil(t, r.DaysSincePurchase)
	assert.Nil(t, r.AvgDaysBetweenPurchases)
	assert.False(t, r.EstimatedMonthlyCost.Valid)
	assert.Equal(t, PriorityUrgent, r.PurchasePriority)
}

func TestSortForecast(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []ForecastRow{
		{ProductID: 1, PurchasePriority: PriorityPlanned, LastPurchaseDate: &jan},
		{ProductID: 2, PurchasePriority: PriorityUrgent, LastPurchaseDate: &mar},
		{ProductID: 3, PurchasePriority: PrioritySoon},
		{ProductID: 4, PurchasePriority: PriorityUrgent, LastPurchaseDate: &jan},
		{ProductID: 5, PurchasePriority: PriorityUrgent},
	}
	sortForecast(rows)

	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ProductID
	}
	assert.Equal(t, []uint{5, 4, 2, 3, 1}, ids)
}

//go:build integration

package customer

import (
	"context"
	"testing"
	"time"

	"inventory-backend/internal/models"
	"inventory-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachRecentOrders(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	busy := testutil.CreateCustomer(t, db, "Sunshine Cafe")
	quiet := testutil.CreateCustomer(t, db, "Harbor Bistro")
	idle := testutil.CreateCustomer(t, db, "Corner Deli")

	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&models.CustomerOrder{
			CustomerID:  busy.ID,
			OrderDate:   day.AddDate(0, 0, i),
			Status:      models.OrderCompleted,
			TotalAmount: decimal.NewFromInt(int64(10 * (i + 1))),
		}).Error)
	}
	require.NoError(t, db.Create(&models.CustomerOrder{
		CustomerID: quiet.ID,
		OrderDate:  day,
		Status:     models.OrderPending,
	}).Error)

	customers := []models.Customer{busy, quiet, idle}
	require.NoError(t, attachRecentOrders(ctx, db, customers))

	require.Len(t, customers[0].Orders, recentOrderLimit)
	assert.Equal(t, day.AddDate(0, 0, 6), customers[0].Orders[0].OrderDate.UTC())
	assert.Equal(t, day.AddDate(0, 0, 2), customers[0].Orders[4].OrderDate.UTC())
	assert.Equal(t, "70.00", customers[0].Orders[0].TotalAmount.StringFixed(2))

	require.Len(t, customers[1].Orders, 1)
	assert.Equal(t, models.OrderPending, customers[1].Orders[0].Status)
	assert.Empty(t, customers[2].Orders)

	resp := toResponse(customers[0])
	require.Len(t, resp.Orders, recentOrderLimit)
	assert.Equal(t, "2024-05-07", resp.Orders[0].OrderDate)

	assert.NoError(t, attachRecentOrders(ctx, db, nil))
}

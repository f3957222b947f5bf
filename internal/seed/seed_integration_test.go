//go:build integration

package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inventory-backend/internal/models"
	"inventory-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	n, err := Run(ctx, db, false, log)
	require.NoError(t, err)
	assert.Equal(t, Counts{
		Suppliers:  8,
		Categories: 9,
		Products:   15,
		Customers:  8,
		Purchases:  len(purchases),
		Orders:     len(orders),
	}, n)

	stockOf := func(name string) int {
		var p models.Product
		require.NoError(t, db.Where("name = ?", name).First(&p).Error)
		return p.StockQuantity
	}
	// 450 on hand, 590 bought, 192 sold
	assert.Equal(t, 848, stockOf("Organic Rice 5kg"))
	// 70 on hand, 252 bought, 207 sold
	assert.Equal(t, 115, stockOf("Beef Tenderloin 5kg"))

	var drifted int64
	require.NoError(t, db.Raw(`
		SELECT count(*) FROM customer_orders o
		WHERE o.total_amount <> COALESCE((SELECT SUM(subtotal) FROM customer_order_items WHERE order_id = o.id), 0)`).
		Scan(&drifted).Error)
	assert.Zero(t, drifted)

	// Rice sells at 12.50 and is bought at 10.00.
	var cost string
	require.NoError(t, db.Raw(`
		SELECT i.unit_cost::text FROM supplier_purchase_items i
		JOIN products p ON p.id = i.product_id
		WHERE p.name = 'Organic Rice 5kg' LIMIT 1`).Scan(&cost).Error)
	assert.Equal(t, "10.00", cost)

	_, err = Run(ctx, db, false, log)
	assert.ErrorIs(t, err, ErrNotEmpty)

	again, err := Run(ctx, db, true, log)
	require.NoError(t, err)
	assert.Equal(t, n, again)
	assert.Equal(t, 848, stockOf("Organic Rice 5kg"))
}

//go:build integration

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t   *testing.T
	app *fiber.App
}

func (a apiClient) call(method, path string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

func TestAPIFlow(t *testing.T) {
	database.DB = testutil.NewDB(t)
	t.Cleanup(func() { database.DB = nil })
	api := apiClient{t: t, app: testApp(t)}

	var supplier struct{ ID uint }
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/suppliers",
		map[string]any{"name": "Fresh Foods Supplier", "region": "Central"}, &supplier))

	var customer struct{ ID uint }
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/customers",
		map[string]any{"name": "Sunshine Cafe", "email": "orders@sunshinecafe.com"}, &customer))

	var category struct{ ID uint }
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/products/meta/categories",
		map[string]any{"name": "Grains"}, &category))
	assert.Equal(t, http.StatusConflict, api.call(http.MethodPost, "/api/products/meta/categories",
		map[string]any{"name": "Grains"}, nil))

	var product struct {
		ID            uint
		StockQuantity int `json:"stock_quantity"`
	}
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/products", map[string]any{
		"name": "Organic Rice 5kg", "unit": "kg", "unit_price": 12.5,
		"stock_quantity": 100, "category_id": category.ID, "supplier_id": supplier.ID,
	}, &product))
	assert.Equal(t, 100, product.StockQuantity)

	assert.Equal(t, http.StatusBadRequest, api.call(http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID),
		map[string]any{"stock_quantity": 5}, nil), "stock only moves through items")

	type doc struct {
		ID          uint
		TotalAmount float64 `json:"total_amount"`
		Items       []struct {
			ID       uint
			Subtotal float64
		}
	}

	var purchase doc
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/supplier-purchases", map[string]any{
		"supplier_id":   supplier.ID,
		"purchase_date": "2025-03-12",
		"status":        "completed",
		"items":         []map[string]any{{"product_id": product.ID, "quantity": 50, "unit_cost": 10}},
	}, &purchase))
	assert.Equal(t, 500.0, purchase.TotalAmount)

	var order doc
	require.Equal(t, http.StatusCreated, api.call(http.MethodPost, "/api/customer-orders", map[string]any{
		"customer_id": customer.ID,
		"items":       []map[string]any{{"product_id": product.ID, "quantity": 30, "unit_price": 12.5}},
	}, &order))
	assert.Equal(t, 375.0, order.TotalAmount)
	assert.Equal(t, 120, testutil.Stock(t, database.DB, product.ID))

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, fmt.Sprintf("/api/customer-orders/%d/items", order.ID),
		map[string]any{"product_id": product.ID, "quantity": 500, "unit_price": 12.5}, &errBody))
	assert.Equal(t, "insufficient stock", errBody["error"])

	require.Equal(t, http.StatusOK, api.call(http.MethodPut,
		fmt.Sprintf("/api/customer-orders/%d/items/%d", order.ID, order.Items[0].ID),
		map[string]any{"quantity": 40, "unit_price": 12.5}, &order))
	assert.Equal(t, 500.0, order.TotalAmount)
	assert.Equal(t, 110, testutil.Stock(t, database.DB, product.ID))

	var lowStock []map[string]any
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/dashboard/low-stock-alerts?threshold=200", nil, &lowStock))
	require.Len(t, lowStock, 1)
	assert.Equal(t, "low", lowStock[0]["band"])

	require.Equal(t, http.StatusOK, api.call(http.MethodDelete, fmt.Sprintf("/api/customer-orders/%d", order.ID), nil, nil))
	assert.Equal(t, 150, testutil.Stock(t, database.DB, product.ID))
	assert.Equal(t, http.StatusNotFound, api.call(http.MethodGet, fmt.Sprintf("/api/customer-orders/%d", order.ID), nil, nil))

	var logs []map[string]any
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/audit-logs?entity_type=customer_order", nil, &logs))
	assert.Len(t, logs, 2, "create and delete")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stock-distribution?format=xlsx", nil)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "stock_distribution_")
}

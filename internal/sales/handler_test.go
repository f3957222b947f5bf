package sales

import (
	"encoding/json"
	"testing"

	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestToInput(t *testing.T) {
	var body CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"customer_id": 2,
		"shipping_address": " 50 Marina Bay ",
		"items": [
			{"product_id": 1, "quantity": 3, "unit_price": 12.5},
			{"product_id": 2, "quantity": 1, "unit_price": "18.90"}
		]
	}`), &body))

	in, err := body.toInput()
	require.NoError(t, err)
	require.NoError(t, in.Validate())
	assert.Equal(t, models.OrderPending, in.Status)
	assert.Equal(t, "50 Marina Bay", in.ShippingAddress)
	assert.False(t, in.OrderDate.IsZero())
	require.Len(t, in.Items, 2)
	assert.True(t, in.Items[1].UnitPrice.Equal(decimal.RequireFromString("18.9")))
}

func TestMissingPrice(t *testing.T) {
	body := CreateOrderRequest{CustomerID: 2, Items: []ItemRequest{{ProductID: 1, Quantity: 1}}}
	_, err := body.toInput()
	assert.EqualError(t, err, "items[0].unit_price: is required")
}

func TestToResponse(t *testing.T) {
	o := models.CustomerOrder{
		ID:          7,
		CustomerID:  2,
		Customer:    &models.Customer{ID: 2, Name: "Family Bistro"},
		TotalAmount: decimal.RequireFromString("67.05"),
		Status:      models.OrderShipped,
		Items: []models.CustomerOrderItem{{
			ID: 1, OrderID: 7, ProductID: 3, Quantity: 3,
			UnitPrice: decimal.RequireFromString("22.35"),
			Subtotal:  decimal.RequireFromString("67.05"),
			Product:   &models.Product{Name: "Coffee Beans 500g"},
		}},
	}

	resp := toResponse(o)
	assert.Equal(t, "Family Bistro", resp.Customer.Name)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Coffee Beans 500g", resp.Items[0].ProductName)
	assert.Equal(t, "0001-01-01", resp.OrderDate)
}

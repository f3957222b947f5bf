package purchasing

import (
	"encoding/json"
	"testing"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRequestCost(t *testing.T) {
	var both ItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":1,"quantity":2,"unit_cost":4.5,"unit_price":9}`), &both))
	in, err := both.toInput("")
	require.NoError(t, err)
	assert.Equal(t, "4.5", in.UnitPrice.String(), "unit_cost wins over the alias")

	var alias ItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":1,"quantity":2,"unit_price":"3.25"}`), &alias))
	in, err = alias.toInput("")
	require.NoError(t, err)
	assert.Equal(t, "3.25", in.UnitPrice.String())

	_, err = ItemRequest{ProductID: 1, Quantity: 2}.toInput("items[3]")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.EqualError(t, err, "items[3].unit_cost: is required")
}

func TestCreateRequestToInput(t *testing.T) {
	var body CreatePurchaseRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"supplier_id": 4,
		"purchase_date": "2025-03-12",
		"status": " Completed ",
		"items": [{"product_id": 1, "quantity": 10, "unit_cost": 10}]
	}`), &body))

	in, err := body.toInput()
	require.NoError(t, err)
	assert.Equal(t, uint(4), in.SupplierID)
	assert.Equal(t, models.PurchaseCompleted, in.Status)
	assert.Equal(t, "2025-03-12", in.PurchaseDate.Format("2006-01-02"))
	require.Len(t, in.Items, 1)
	assert.NoError(t, in.Validate())
}

func TestUpdateRequestToHeader(t *testing.T) {
	var body UpdatePurchaseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"CANCELLED","notes":"  supplier closed  "}`), &body))

	h := body.toHeader()
	require.NotNil(t, h.Status)
	assert.Equal(t, models.PurchaseCancelled, *h.Status)
	assert.Equal(t, "supplier closed", *h.Notes)
	assert.Nil(t, h.SupplierID)
	assert.Nil(t, h.PurchaseDate)
	assert.NoError(t, h.Validate())
}

package ledger

import (
	"math"
	"testing"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemInputValidate(t *testing.T) {
	price := decimal.RequireFromString("1.50")

	tests := []struct {
		name  string
		in    ItemInput
		field string
	}{
		{"missing product", ItemInput{Quantity: 1, UnitPrice: price}, "product_id"},
		{"zero quantity", ItemInput{ProductID: 1, Quantity: 0, UnitPrice: price}, "quantity"},
		{"negative quantity", ItemInput{ProductID: 1, Quantity: -2, UnitPrice: price}, "quantity"},
		{"quantity out of range", ItemInput{ProductID: 1, Quantity: math.MaxInt32 + 1, UnitPrice: price}, "quantity"},
		{"negative price", ItemInput{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}, "unit_cost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate("", "unit_cost")
			require.ErrorIs(t, err, apperr.ErrValidation)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	assert.NoError(t, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: decimal.Zero}.Validate("", "unit_cost"))
	assert.NoError(t, ItemInput{ProductID: 1, Quantity: MaxQuantity, UnitPrice: price}.Validate("", "unit_cost"))
}

func TestItemPriceFieldFollowsDocument(t *testing.T) {
	negative := []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(-3)}}

	var ve *apperr.ValidationError
	purchase := PurchaseInput{SupplierID: 1, Items: negative}
	require.ErrorAs(t, purchase.Validate(), &ve)
	assert.Equal(t, "items[0].unit_cost", ve.Field)

	order := OrderInput{CustomerID: 1, Items: negative}
	require.ErrorAs(t, order.Validate(), &ve)
	assert.Equal(t, "items[0].unit_price", ve.Field)
}

func TestNewLineRoundsPrice(t *testing.T) {
	l := newLine(3, ItemInput{ProductID: 1, Quantity: 8, UnitPrice: decimal.RequireFromString("0.125")})

	assert.Equal(t, "0.13", l.Price.String())
	assert.Equal(t, "1.04", l.Subtotal.StringFixed(2))
	assert.True(t, l.Subtotal.Equal(Subtotal(l.Quantity, l.Price)), "subtotal follows the stored price")
}

func TestPurchaseInputValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		in := PurchaseInput{SupplierID: 1, Notes: "  weekly rice  "}
		require.NoError(t, in.Validate())
		assert.Equal(t, models.PurchasePending, in.Status)
		assert.False(t, in.PurchaseDate.IsZero())
		assert.Equal(t, "weekly rice", in.Notes)
	})

	t.Run("supplier required", func(t *testing.T) {
		in := PurchaseInput{}
		assert.ErrorIs(t, in.Validate(), apperr.ErrValidation)
	})

	t.Run("unknown status", func(t *testing.T) {
		in := PurchaseInput{SupplierID: 1, Status: "shipped"}
		assert.ErrorIs(t, in.Validate(), apperr.ErrValidation)
	})

	t.Run("bad item names its index", func(t *testing.T) {
		in := PurchaseInput{SupplierID: 1, Items: []ItemInput{
			{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
			{ProductID: 2, Quantity: 0, UnitPrice: decimal.NewFromInt(1)},
		}}
		var ve *apperr.ValidationError
		require.ErrorAs(t, in.Validate(), &ve)
		assert.Equal(t, "items[1].quantity", ve.Field)
	})
}

func TestOrderInputValidate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := OrderInput{CustomerID: 4, OrderDate: date, Status: models.OrderShipped, ShippingAddress: " 12 Main St "}
	require.NoError(t, in.Validate())
	assert.Equal(t, date, in.OrderDate)
	assert.Equal(t, "12 Main St", in.ShippingAddress)

	bad := OrderInput{CustomerID: 4, Status: "ordered"}
	assert.ErrorIs(t, bad.Validate(), apperr.ErrValidation)
}

func TestHeaderValidate(t *testing.T) {
	zero := uint(0)
	assert.ErrorIs(t, PurchaseHeader{SupplierID: &zero}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, OrderHeader{CustomerID: &zero}.Validate(), apperr.ErrValidation)

	cancelled := models.OrderCancelled
	assert.NoError(t, OrderHeader{Status: &cancelled}.Validate())

	var empty time.Time
	assert.ErrorIs(t, PurchaseHeader{PurchaseDate: &empty}.Validate(), apperr.ErrValidation)
}

package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		price string
		want  string
	}{
		{"whole", 10, "5.00", "50"},
		{"cents", 3, "2.35", "7.05"},
		{"half rounds away from zero", 1, "0.125", "0.13"},
		{"free item", 7, "0", "0"},
		{"large", 1000, "12.50", "12500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(tt.qty, decimal.RequireFromString(tt.price))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestSum(t *testing.T) {
	got := Sum(decimal.RequireFromString("50.00"), decimal.RequireFromString("7.05"), decimal.RequireFromString("0.13"))
	assert.Equal(t, "57.18", got.StringFixed(2))

	assert.True(t, Sum().IsZero())
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, "0.13", UnitPrice(decimal.RequireFromString("0.125")).String())
	assert.Equal(t, "-0.13", UnitPrice(decimal.RequireFromString("-0.125")).String())
	assert.Equal(t, "4.5", UnitPrice(decimal.RequireFromString("4.5")).String())
}

package ledger

import "github.com/shopspring/decimal"

// UnitPrice rounds a unit price half away from zero to cents, the precision
// item prices are stored at.
func UnitPrice(price decimal.Decimal) decimal.Decimal {
	return price.Round(2)
}

// Subtotal is quantity × price rounded half away from zero to cents.
func Subtotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// Sum adds already rounded amounts and rounds the result again.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts...).Round(2)
}

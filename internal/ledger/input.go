package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ItemInput is one line of a purchase or order. UnitPrice is the unit cost
// on purchases and the selling price on orders.
type ItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// MaxQuantity is the largest quantity a single line may carry.
const MaxQuantity = math.MaxInt32

// Validate checks the line. field prefixes the reported field names and
// priceField names the price as the caller sent it (unit_cost or
// unit_price).
func (in ItemInput) Validate(field, priceField string) error {
	if in.ProductID == 0 {
		return apperr.Invalid(fieldName(field, "product_id"), "is required")
	}
	return ItemChange{Quantity: in.Quantity, UnitPrice: in.UnitPrice}.Validate(field, priceField)
}

// ItemChange replaces the quantity and price of an existing line.
type ItemChange struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

func (in ItemChange) Validate(field, priceField string) error {
	if in.Quantity < 1 {
		return apperr.Invalid(fieldName(field, "quantity"), "must be at least 1")
	}
	if in.Quantity > MaxQuantity {
		return apperr.Invalid(fieldName(field, "quantity"), "must be at most %d", MaxQuantity)
	}
	if in.UnitPrice.IsNegative() {
		return apperr.Invalid(fieldName(field, priceField), "must not be negative")
	}
	return nil
}

func fieldName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

type PurchaseInput struct {
	SupplierID   uint
	PurchaseDate time.Time // zero means now
	Status       models.PurchaseStatus
	Notes        string
	Items        []ItemInput
}

func (in *PurchaseInput) Validate() error {
	if in.SupplierID == 0 {
		return apperr.Invalid("supplier_id", "is required")
	}
	if in.Status == "" {
		in.Status = models.PurchasePending
	}
	if !in.Status.Valid() {
		return apperr.Invalid("status", "unknown purchase status %q", in.Status)
	}
	if in.PurchaseDate.IsZero() {
		in.PurchaseDate = time.Now()
	}
	in.Notes = strings.TrimSpace(in.Notes)
	return validateItems(in.Items, purchases.priceCol)
}

type OrderInput struct {
	CustomerID      uint
	OrderDate       time.Time // zero means now
	Status          models.OrderStatus
	ShippingAddress string
	Notes           string
	Items           []ItemInput
}

func (in *OrderInput) Validate() error {
	if in.CustomerID == 0 {
		return apperr.Invalid("customer_id", "is required")
	}
	if in.Status == "" {
		in.Status = models.OrderPending
	}
	if !in.Status.Valid() {
		return apperr.Invalid("status", "unknown order status %q", in.Status)
	}
	if in.OrderDate.IsZero() {
		in.OrderDate = time.Now()
	}
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	in.Notes = strings.TrimSpace(in.Notes)
	return validateItems(in.Items, orders.priceCol)
}

func validateItems(items []ItemInput, priceField string) error {
	for i, it := range items {
		if err := it.Validate(fmt.Sprintf("items[%d]", i), priceField); err != nil {
			return err
		}
	}
	return nil
}

// PurchaseHeader holds the purchase fields that may change after creation.
// Totals and stock are never part of it.
type PurchaseHeader struct {
	SupplierID   *uint
	PurchaseDate *time.Time
	Status       *models.PurchaseStatus
	Notes        *string
}

func (h PurchaseHeader) Validate() error {
	if h.SupplierID != nil && *h.SupplierID == 0 {
		return apperr.Invalid("supplier_id", "is required")
	}
	if h.Status != nil && !h.Status.Valid() {
		return apperr.Invalid("status", "unknown purchase status %q", *h.Status)
	}
	if h.PurchaseDate != nil && h.PurchaseDate.IsZero() {
		return apperr.Invalid("purchase_date", "is required")
	}
	return nil
}

type OrderHeader struct {
	CustomerID      *uint
	OrderDate       *time.Time
	Status          *models.OrderStatus
	ShippingAddress *string
	Notes           *string
}

func (h OrderHeader) Validate() error {
	if h.CustomerID != nil && *h.CustomerID == 0 {
		return apperr.Invalid("customer_id", "is required")
	}
	if h.Status != nil && !h.Status.Valid() {
		return apperr.Invalid("status", "unknown order status %q", *h.Status)
	}
	if h.OrderDate != nil && h.OrderDate.IsZero() {
		return apperr.Invalid("order_date", "is required")
	}
	return nil
}

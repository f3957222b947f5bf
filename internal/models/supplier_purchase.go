package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierPurchase: stock bought from a supplier, one or more items
type SupplierPurchase struct {
	ID           uint            `gorm:"primaryKey"`
	SupplierID   uint            `gorm:"index;not null"`
	Supplier     *Supplier       `gorm:"foreignKey:SupplierID"`
	PurchaseDate time.Time       `gorm:"index;not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"` // sum of item subtotals
	Status       PurchaseStatus  `gorm:"size:20;not null;default:pending"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []SupplierPurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// SupplierPurchaseItem: each product line of a purchase
type SupplierPurchaseItem struct {
	ID         uint            `gorm:"primaryKey"`
	PurchaseID uint            `gorm:"index;not null"`
	ProductID  uint            `gorm:"index;not null"`
	Product    *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity   int             `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"` // Quantity * UnitCost
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerOrder: a sales order, one or more items
type CustomerOrder struct {
	ID              uint            `gorm:"primaryKey"`
	CustomerID      uint            `gorm:"index;not null"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID"`
	OrderDate       time.Time       `gorm:"index;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status          OrderStatus     `gorm:"size:20;not null;default:pending"`
	ShippingAddress string          `gorm:"type:text"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []CustomerOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type CustomerOrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"` // Quantity * UnitPrice
	CreatedAt time.Time
	UpdatedAt time.Time
}

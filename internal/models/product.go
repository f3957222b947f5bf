package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultReorderLevel = 100

type Product struct {
	ID            uint             `gorm:"primaryKey"`
	Name          string           `gorm:"size:255;not null"`
	Description   string           `gorm:"type:text"`
	CategoryID    *uint            `gorm:"index"`
	Category      *ProductCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Unit          string           `gorm:"size:50;not null;default:pcs"` // kg, L, case, bag...
	UnitPrice     decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	StockQuantity int              `gorm:"not null;default:0"` // only moved by line items
	ReorderLevel  int              `gorm:"not null;default:100"`
	SupplierID    *uint            `gorm:"index"`
	Supplier      *Supplier        `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

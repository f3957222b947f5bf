package models

import "time"

// Supplier - the distributor we buy stock from
type Supplier struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	ContactPerson string `gorm:"size:255"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:50"`
	Address       string `gorm:"type:text"`
	Region        string `gorm:"size:100;index"`
	Status        Status `gorm:"size:20;not null;default:active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Products  []Product          `gorm:"foreignKey:SupplierID"`
	Purchases []SupplierPurchase `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

package models

import "time"

const DefaultCustomerType = "retail"

type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`
	Address      string `gorm:"type:text"`
	CustomerType string `gorm:"size:50;not null;default:retail"` // retail, wholesale...
	Status       Status `gorm:"size:20;not null;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders []CustomerOrder `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

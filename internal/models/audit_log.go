package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	// product, product_category, supplier, customer, supplier_purchase,
	// supplier_purchase_item, customer_order, customer_order_item
	EntityType string `gorm:"size:50;index"`
	EntityID   uint   `gorm:"index"`

	Action      AuditAction `gorm:"size:20"`
	Description string      `gorm:"size:255"`

	// Before and after state as JSON, "null" when absent
	BeforeData string `gorm:"type:jsonb"`
	AfterData  string `gorm:"type:jsonb"`
}

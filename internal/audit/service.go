package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// Entity types written to audit_logs.entity_type.
const (
	EntityProduct         = "product"
	EntityProductCategory = "product_category"
	EntitySupplier        = "supplier"
	EntityCustomer        = "customer"
	EntityPurchase        = "supplier_purchase"
	EntityPurchaseItem    = "supplier_purchase_item"
	EntityOrder           = "customer_order"
	EntityOrderItem       = "customer_order_item"
)

type LogOptions struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(ctx context.Context, db *gorm.DB, opts LogOptions) error {
	// jsonb columns take the JSON literal null, never an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := db.WithContext(ctx).Create(&log).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// Record writes an audit entry for a committed change. A failed write is
// logged and otherwise ignored.
func Record(ctx context.Context, opts LogOptions) {
	if err := WriteLog(ctx, database.DB, opts); err != nil {
		slog.Default().ErrorContext(ctx, "audit log failed",
			"entity_type", opts.EntityType,
			"entity_id", opts.EntityID,
			"action", opts.Action,
			"error", err)
	}
}

package ledger

import (
	"context"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// CreateOrder records an order with its items and takes every item's
// quantity out of stock. An item without enough stock fails the whole order.
func CreateOrder(ctx context.Context, db *gorm.DB, in OrderInput) (*models.CustomerOrder, error) {
	if err := in.Validate(); err != nil {
		return nil, orders.observe("create", err)
	}

	var id uint
	err := orders.run(ctx, db, "create", func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Customer{}, "SHARE", in.CustomerID, "customer"); err != nil {
			return err
		}

		o := models.CustomerOrder{
			CustomerID:      in.CustomerID,
			OrderDate:       in.OrderDate,
			Status:          in.Status,
			ShippingAddress: in.ShippingAddress,
			Notes:           in.Notes,
		}
		if err := tx.Omit("Items", "Customer").Create(&o).Error; err != nil {
			return err
		}

		total, err := orders.createLines(tx, o.ID, in.Items)
		if err != nil {
			return err
		}
		id = o.ID
		return orders.setTotal(tx, o.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return LoadOrder(ctx, db, id)
}

func AddOrderItem(ctx context.Context, db *gorm.DB, orderID uint, in ItemInput) (*models.CustomerOrderItem, error) {
	if err := in.Validate("", orders.priceCol); err != nil {
		return nil, orders.observe("add_item", err)
	}

	var itemID uint
	err := orders.run(ctx, db, "add_item", func(tx *gorm.DB) error {
		l, err := orders.addLine(tx, orderID, in)
		itemID = l.ID
		return err
	})
	if err != nil {
		return nil, err
	}
	return loadOrderItem(ctx, db, itemID)
}

func UpdateOrderItem(ctx context.Context, db *gorm.DB, orderID, itemID uint, in ItemChange) (*models.CustomerOrderItem, error) {
	if err := in.Validate("", orders.priceCol); err != nil {
		return nil, orders.observe("update_item", err)
	}

	err := orders.run(ctx, db, "update_item", func(tx *gorm.DB) error {
		return orders.updateLine(tx, orderID, itemID, in)
	})
	if err != nil {
		return nil, err
	}
	return loadOrderItem(ctx, db, itemID)
}

// DeleteOrderItem returns the item's quantity to stock.
func DeleteOrderItem(ctx context.Context, db *gorm.DB, orderID, itemID uint) error {
	return orders.run(ctx, db, "delete_item", func(tx *gorm.DB) error {
		return orders.deleteLine(tx, orderID, itemID)
	})
}

func DeleteOrder(ctx context.Context, db *gorm.DB, orderID uint) error {
	return orders.run(ctx, db, "delete", func(tx *gorm.DB) error {
		return orders.deleteDoc(tx, orderID)
	})
}

// UpdateOrderHeader changes the descriptive fields of an order. Cancelling
// an order this way leaves stock untouched.
func UpdateOrderHeader(ctx context.Context, db *gorm.DB, orderID uint, h OrderHeader) (*models.CustomerOrder, error) {
	if err := h.Validate(); err != nil {
		return nil, orders.observe("update", err)
	}

	err := orders.run(ctx, db, "update", func(tx *gorm.DB) error {
		if err := orders.lockDoc(tx, orderID); err != nil {
			return err
		}

		updates := map[string]any{}
		if h.CustomerID != nil {
			if err := lockRow(tx, &models.Customer{}, "SHARE", *h.CustomerID, "customer"); err != nil {
				return err
			}
			updates["customer_id"] = *h.CustomerID
		}
		if h.OrderDate != nil {
			updates["order_date"] = *h.OrderDate
		}
		if h.Status != nil {
			updates["status"] = *h.Status
		}
		if h.ShippingAddress != nil {
			updates["shipping_address"] = *h.ShippingAddress
		}
		if h.Notes != nil {
			updates["notes"] = *h.Notes
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.CustomerOrder{ID: orderID}).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return LoadOrder(ctx, db, orderID)
}

// LoadOrder returns an order with its customer and items.
func LoadOrder(ctx context.Context, db *gorm.DB, id uint) (*models.CustomerOrder, error) {
	var o models.CustomerOrder
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Items.Product").
		First(&o, id).Error
	if err != nil {
		return nil, apperr.FromDB(err, "order")
	}
	return &o, nil
}

func loadOrderItem(ctx context.Context, db *gorm.DB, id uint) (*models.CustomerOrderItem, error) {
	var it models.CustomerOrderItem
	if err := db.WithContext(ctx).Preload("Product").First(&it, id).Error; err != nil {
		return nil, apperr.FromDB(err, "order item")
	}
	return &it, nil
}

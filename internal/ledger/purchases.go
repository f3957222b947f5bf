package ledger

import (
	"context"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// CreatePurchase records a purchase with its items and adds every item's
// quantity to stock.
func CreatePurchase(ctx context.Context, db *gorm.DB, in PurchaseInput) (*models.SupplierPurchase, error) {
	if err := in.Validate(); err != nil {
		return nil, purchases.observe("create", err)
	}

	var id uint
	err := purchases.run(ctx, db, "create", func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Supplier{}, "SHARE", in.SupplierID, "supplier"); err != nil {
			return err
		}

		p := models.SupplierPurchase{
			SupplierID:   in.SupplierID,
			PurchaseDate: in.PurchaseDate,
			Status:       in.Status,
			Notes:        in.Notes,
		}
		if err := tx.Omit("Items", "Supplier").Create(&p).Error; err != nil {
			return err
		}

		total, err := purchases.createLines(tx, p.ID, in.Items)
		if err != nil {
			return err
		}
		id = p.ID
		return purchases.setTotal(tx, p.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return LoadPurchase(ctx, db, id)
}

// AddPurchaseItem appends one item to an existing purchase.
func AddPurchaseItem(ctx context.Context, db *gorm.DB, purchaseID uint, in ItemInput) (*models.SupplierPurchaseItem, error) {
	if err := in.Validate("", purchases.priceCol); err != nil {
		return nil, purchases.observe("add_item", err)
	}

	var itemID uint
	err := purchases.run(ctx, db, "add_item", func(tx *gorm.DB) error {
		l, err := purchases.addLine(tx, purchaseID, in)
		itemID = l.ID
		return err
	})
	if err != nil {
		return nil, err
	}
	return loadPurchaseItem(ctx, db, itemID)
}

// UpdatePurchaseItem replaces quantity and unit cost of an item. Only the
// difference to the previous values reaches stock and the purchase total.
func UpdatePurchaseItem(ctx context.Context, db *gorm.DB, purchaseID, itemID uint, in ItemChange) (*models.SupplierPurchaseItem, error) {
	if err := in.Validate("", purchases.priceCol); err != nil {
		return nil, purchases.observe("update_item", err)
	}

	err := purchases.run(ctx, db, "update_item", func(tx *gorm.DB) error {
		return purchases.updateLine(tx, purchaseID, itemID, in)
	})
	if err != nil {
		return nil, err
	}
	return loadPurchaseItem(ctx, db, itemID)
}

func DeletePurchaseItem(ctx context.Context, db *gorm.DB, purchaseID, itemID uint) error {
	return purchases.run(ctx, db, "delete_item", func(tx *gorm.DB) error {
		return purchases.deleteLine(tx, purchaseID, itemID)
	})
}

// DeletePurchase takes every item's quantity back out of stock and removes
// the purchase.
func DeletePurchase(ctx context.Context, db *gorm.DB, purchaseID uint) error {
	return purchases.run(ctx, db, "delete", func(tx *gorm.DB) error {
		return purchases.deleteDoc(tx, purchaseID)
	})
}

// UpdatePurchaseHeader changes the descriptive fields of a purchase.
func UpdatePurchaseHeader(ctx context.Context, db *gorm.DB, purchaseID uint, h PurchaseHeader) (*models.SupplierPurchase, error) {
	if err := h.Validate(); err != nil {
		return nil, purchases.observe("update", err)
	}

	err := purchases.run(ctx, db, "update", func(tx *gorm.DB) error {
		if err := purchases.lockDoc(tx, purchaseID); err != nil {
			return err
		}

		updates := map[string]any{}
		if h.SupplierID != nil {
			if err := lockRow(tx, &models.Supplier{}, "SHARE", *h.SupplierID, "supplier"); err != nil {
				return err
			}
			updates["supplier_id"] = *h.SupplierID
		}
		if h.PurchaseDate != nil {
			updates["purchase_date"] = *h.PurchaseDate
		}
		if h.Status != nil {
			updates["status"] = *h.Status
		}
		if h.Notes != nil {
			updates["notes"] = *h.Notes
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.SupplierPurchase{ID: purchaseID}).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return LoadPurchase(ctx, db, purchaseID)
}

// LoadPurchase returns a purchase with its supplier and items.
func LoadPurchase(ctx context.Context, db *gorm.DB, id uint) (*models.SupplierPurchase, error) {
	var p models.SupplierPurchase
	err := db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Items.Product").
		First(&p, id).Error
	if err != nil {
		return nil, apperr.FromDB(err, "purchase")
	}
	return &p, nil
}

func loadPurchaseItem(ctx context.Context, db *gorm.DB, id uint) (*models.SupplierPurchaseItem, error) {
	var it models.SupplierPurchaseItem
	if err := db.WithContext(ctx).Preload("Product").First(&it, id).Error; err != nil {
		return nil, apperr.FromDB(err, "purchase item")
	}
	return &it, nil
}

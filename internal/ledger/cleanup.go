package ledger

import (
	"context"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// DeleteSupplier deletes each of the supplier's purchases the way
// DeletePurchase does, then the supplier. Its products stay and lose the
// supplier reference.
func DeleteSupplier(ctx context.Context, db *gorm.DB, supplierID uint) error {
	return purchases.run(ctx, db, "delete_supplier", func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Supplier{}, "UPDATE", supplierID, "supplier"); err != nil {
			return err
		}

		var ids []uint
		if err := tx.Model(&models.SupplierPurchase{}).
			Where("supplier_id = ?", supplierID).
			Order("id").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := purchases.deleteDoc(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Supplier{}, supplierID).Error
	})
}

// DeleteCustomer deletes each of the customer's orders, returning their
// quantities to stock, then the customer.
func DeleteCustomer(ctx context.Context, db *gorm.DB, customerID uint) error {
	return orders.run(ctx, db, "delete_customer", func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Customer{}, "UPDATE", customerID, "customer"); err != nil {
			return err
		}

		var ids []uint
		if err := tx.Model(&models.CustomerOrder{}).
			Where("customer_id = ?", customerID).
			Order("id").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := orders.deleteDoc(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Customer{}, customerID).Error
	})
}

// DeleteProduct removes a product together with every item that names it.
// The totals of the affected purchases and orders drop by those items'
// subtotals. Stock is not touched since the product itself goes away.
func DeleteProduct(ctx context.Context, db *gorm.DB, productID uint) error {
	return purchases.run(ctx, db, "delete_product", func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Product{}, "UPDATE", productID, "product"); err != nil {
			return err
		}
		for _, b := range []book{purchases, orders} {
			if err := b.detachProduct(tx, productID); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Product{}, productID).Error
	})
}

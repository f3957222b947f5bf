package testutil

import (
	"testing"

	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateSupplier(t *testing.T, db *gorm.DB, name string) models.Supplier {
	t.Helper()
	s := models.Supplier{Name: name, Status: models.StatusActive}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func CreateCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, CustomerType: models.DefaultCustomerType, Status: models.StatusActive}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// CreateProduct inserts a product with the given stock and the default
// reorder level.
func CreateProduct(t *testing.T, db *gorm.DB, name string, stock int, price string) models.Product {
	t.Helper()
	p := models.Product{
		Name:          name,
		Unit:          "pcs",
		UnitPrice:     decimal.RequireFromString(price),
		StockQuantity: stock,
		ReorderLevel:  models.DefaultReorderLevel,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// Stock reads the current stock of a product.
func Stock(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, productID).Error)
	return p.StockQuantity
}

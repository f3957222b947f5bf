// Package seed loads a sample distributor catalogue with a few years of
// purchases and orders. Documents go through the ledger, so stock ends up
// as the starting stock plus purchases minus sales.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotEmpty is returned when the store already holds products and the
// caller did not ask for a reset.
var ErrNotEmpty = errors.New("database already has data, use --reset to replace it")

const dateLayout = "2006-01-02"

// Purchases are costed at this share of the selling price.
var costRatio = decimal.RequireFromString("0.8")

type productSeed struct {
	name        string
	description string
	category    string
	unit        string
	price       string
	stock       int
	reorder     int
	supplier    int
}

type lineSeed struct {
	product  int
	quantity int
}

// docSeed is a purchase (party is a supplier) or an order (party is a
// customer). Indexes refer to the slices in data.go.
type docSeed struct {
	party  int
	date   string
	status string
	notes  string
	items  []lineSeed
}

type Counts struct {
	Suppliers  int
	Categories int
	Products   int
	Customers  int
	Purchases  int
	Orders     int
}

// Run writes the sample data in one transaction. With reset set, every
// table is emptied first.
func Run(ctx context.Context, db *gorm.DB, reset bool, log *slog.Logger) (Counts, error) {
	var n Counts
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := truncate(tx); err != nil {
				return err
			}
		} else {
			var existing int64
			if err := tx.Model(&models.Product{}).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return ErrNotEmpty
			}
		}

		supplierIDs, err := createSuppliers(tx)
		if err != nil {
			return err
		}
		n.Suppliers = len(supplierIDs)

		productIDs, prices, categories, err := createProducts(tx, supplierIDs)
		if err != nil {
			return err
		}
		n.Products, n.Categories = len(productIDs), categories

		customerIDs, err := createCustomers(tx)
		if err != nil {
			return err
		}
		n.Customers = len(customerIDs)

		// All purchases first so no sale runs ahead of the stock it needs.
		for i, d := range purchases {
			in := ledger.PurchaseInput{
				SupplierID: supplierIDs[d.party],
				Status:     models.PurchaseStatus(d.status),
				Notes:      d.notes,
			}
			if in.PurchaseDate, err = time.Parse(dateLayout, d.date); err != nil {
				return fmt.Errorf("purchase %d: %w", i, err)
			}
			for _, l := range d.items {
				in.Items = append(in.Items, ledger.ItemInput{
					ProductID: productIDs[l.product],
					Quantity:  l.quantity,
					UnitPrice: prices[l.product].Mul(costRatio).Round(2),
				})
			}
			if _, err := ledger.CreatePurchase(ctx, tx, in); err != nil {
				return fmt.Errorf("purchase %d: %w", i, err)
			}
			n.Purchases++
		}

		for i, d := range orders {
			in := ledger.OrderInput{
				CustomerID:      customerIDs[d.party],
				Status:          models.OrderStatus(d.status),
				ShippingAddress: customers[d.party].Address,
				Notes:           d.notes,
			}
			if in.OrderDate, err = time.Parse(dateLayout, d.date); err != nil {
				return fmt.Errorf("order %d: %w", i, err)
			}
			for _, l := range d.items {
				in.Items = append(in.Items, ledger.ItemInput{
					ProductID: productIDs[l.product],
					Quantity:  l.quantity,
					UnitPrice: prices[l.product],
				})
			}
			if _, err := ledger.CreateOrder(ctx, tx, in); err != nil {
				return fmt.Errorf("order %d: %w", i, err)
			}
			n.Orders++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	log.Info("database seeded",
		"suppliers", n.Suppliers,
		"categories", n.Categories,
		"products", n.Products,
		"customers", n.Customers,
		"purchases", n.Purchases,
		"orders", n.Orders,
	)
	return n, nil
}

func truncate(tx *gorm.DB) error {
	return tx.Exec(`TRUNCATE
		customer_order_items, customer_orders,
		supplier_purchase_items, supplier_purchases,
		products, product_categories, suppliers, customers, audit_logs
		RESTART IDENTITY CASCADE`).Error
}

func createSuppliers(tx *gorm.DB) ([]uint, error) {
	ids := make([]uint, 0, len(suppliers))
	for _, s := range suppliers {
		if err := tx.Omit("Products", "Purchases").Create(&s).Error; err != nil {
			return nil, fmt.Errorf("supplier %s: %w", s.Name, err)
		}
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func createProducts(tx *gorm.DB, supplierIDs []uint) ([]uint, []decimal.Decimal, int, error) {
	categoryIDs := map[string]uint{}
	ids := make([]uint, 0, len(products))
	prices := make([]decimal.Decimal, 0, len(products))

	for _, ps := range products {
		catID, ok := categoryIDs[ps.category]
		if !ok {
			cat := models.ProductCategory{Name: ps.category}
			if err := tx.Create(&cat).Error; err != nil {
				return nil, nil, 0, fmt.Errorf("category %s: %w", ps.category, err)
			}
			catID = cat.ID
			categoryIDs[ps.category] = catID
		}

		supplierID := supplierIDs[ps.supplier]
		p := models.Product{
			Name:          ps.name,
			Description:   ps.description,
			CategoryID:    &catID,
			Unit:          ps.unit,
			UnitPrice:     decimal.RequireFromString(ps.price),
			StockQuantity: ps.stock,
			ReorderLevel:  ps.reorder,
			SupplierID:    &supplierID,
		}
		if err := tx.Omit("Category", "Supplier").Create(&p).Error; err != nil {
			return nil, nil, 0, fmt.Errorf("product %s: %w", ps.name, err)
		}
		ids = append(ids, p.ID)
		prices = append(prices, p.UnitPrice)
	}
	return ids, prices, len(categoryIDs), nil
}

func createCustomers(tx *gorm.DB) ([]uint, error) {
	ids := make([]uint, 0, len(customers))
	for _, c := range customers {
		if err := tx.Omit("Orders").Create(&c).Error; err != nil {
			return nil, fmt.Errorf("customer %s: %w", c.Name, err)
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}

package catalog

import (
	"fmt"
	"strings"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/audit"
	"inventory-backend/internal/database"
	"inventory-backend/internal/httpx"
	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"
	"inventory-backend/internal/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------------------------
// Request Types
// -------------------------

type CreateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryID    *uint            `json:"category_id"`
	Unit          string           `json:"unit"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	StockQuantity *int             `json:"stock_quantity"` // opening stock only
	ReorderLevel  *int             `json:"reorder_level"`
	SupplierID    *uint            `json:"supplier_id"`
}

func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperr.Invalid("name", "is required")
	}
	if r.UnitPrice == nil {
		return apperr.Invalid("unit_price", "is required")
	}
	if r.UnitPrice.IsNegative() {
		return apperr.Invalid("unit_price", "must not be negative")
	}
	if r.StockQuantity != nil && *r.StockQuantity < 0 {
		return apperr.Invalid("stock_quantity", "must not be negative")
	}
	if r.ReorderLevel != nil && *r.ReorderLevel < 0 {
		return apperr.Invalid("reorder_level", "must not be negative")
	}
	return nil
}

// UpdateProductRequest changes descriptive fields. A category_id or
// supplier_id of 0 clears the reference.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *uint            `json:"category_id"`
	Unit          *string          `json:"unit"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	ReorderLevel  *int             `json:"reorder_level"`
	SupplierID    *uint            `json:"supplier_id"`
	StockQuantity *int             `json:"stock_quantity"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.StockQuantity != nil {
		return apperr.Invalid("stock_quantity", "is maintained by purchases and orders")
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return apperr.Invalid("name", "must not be empty")
		}
		r.Name = &name
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		return apperr.Invalid("unit_price", "must not be negative")
	}
	if r.ReorderLevel != nil && *r.ReorderLevel < 0 {
		return apperr.Invalid("reorder_level", "must not be negative")
	}
	return nil
}

// -------------------------
// Products
// -------------------------

// GET /api/products?search=&category_id=&supplier_id=&low_stock=true
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).
			Preload("Category").
			Preload("Supplier")

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			dbq = dbq.Where("name ILIKE ?", "%"+search+"%")
		}
		if id, ok := httpx.QueryUint(c, "category_id"); ok {
			dbq = dbq.Where("category_id = ?", id)
		}
		if id, ok := httpx.QueryUint(c, "supplier_id"); ok {
			dbq = dbq.Where("supplier_id = ?", id)
		}
		if c.QueryBool("low_stock") || c.QueryBool("lowStock") {
			dbq = dbq.Where("stock_quantity < ?", reports.CriticalStockBelow)
		}

		var products []models.Product
		if err := dbq.Order("name ASC, id ASC").Find(&products).Error; err != nil {
			return err
		}
		return c.JSON(toProductResponses(products))
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		p, err := loadProduct(c, id)
		if err != nil {
			return err
		}
		return c.JSON(toProductResponse(*p))
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		product := models.Product{
			Name:         body.Name,
			Description:  strings.TrimSpace(body.Description),
			CategoryID:   optionalRef(body.CategoryID),
			Unit:         strings.TrimSpace(body.Unit),
			UnitPrice:    body.UnitPrice.Round(2),
			ReorderLevel: models.DefaultReorderLevel,
			SupplierID:   optionalRef(body.SupplierID),
		}
		if product.Unit == "" {
			product.Unit = "pcs"
		}
		if body.StockQuantity != nil {
			product.StockQuantity = *body.StockQuantity
		}
		if body.ReorderLevel != nil {
			product.ReorderLevel = *body.ReorderLevel
		}

		err := database.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := checkReferences(tx, product.CategoryID, product.SupplierID); err != nil {
				return err
			}
			return tx.Omit("Category", "Supplier").Create(&product).Error
		})
		if err != nil {
			return apperr.FromDB(err, "product")
		}

		created, err := loadProduct(c, product.ID)
		if err != nil {
			return err
		}
		resp := toProductResponse(*created)

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityProduct,
			EntityID:    product.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Product created: %s", product.Name),
			After:       resp,
		})

		return httpx.Created(c, resp)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body UpdateProductRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		before, err := loadProduct(c, id)
		if err != nil {
			return err
		}

		updates := map[string]any{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Description != nil {
			updates["description"] = strings.TrimSpace(*body.Description)
		}
		if body.Unit != nil {
			updates["unit"] = strings.TrimSpace(*body.Unit)
		}
		if body.UnitPrice != nil {
			updates["unit_price"] = body.UnitPrice.Round(2)
		}
		if body.ReorderLevel != nil {
			updates["reorder_level"] = *body.ReorderLevel
		}
		categoryID := optionalRef(body.CategoryID)
		supplierID := optionalRef(body.SupplierID)
		if body.CategoryID != nil {
			updates["category_id"] = categoryID
		}
		if body.SupplierID != nil {
			updates["supplier_id"] = supplierID
		}

		if len(updates) > 0 {
			err := database.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
				if err := checkReferences(tx, categoryID, supplierID); err != nil {
					return err
				}
				return tx.Model(&models.Product{ID: id}).Updates(updates).Error
			})
			if err != nil {
				return apperr.FromDB(err, "product")
			}
		}

		after, err := loadProduct(c, id)
		if err != nil {
			return err
		}
		resp := toProductResponse(*after)

		if len(updates) > 0 {
			audit.Record(c.UserContext(), audit.LogOptions{
				EntityType:  audit.EntityProduct,
				EntityID:    id,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Product updated: %s", after.Name),
				Before:      toProductResponse(*before),
				After:       resp,
			})
		}
		return c.JSON(resp)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		before, err := loadProduct(c, id)
		if err != nil {
			return err
		}

		if err := ledger.DeleteProduct(c.UserContext(), database.DB, id); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityProduct,
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Product deleted: %s", before.Name),
			Before:      toProductResponse(*before),
		})
		return httpx.Message(c, "Product deleted successfully")
	}
}

// GET /api/products/alerts/low-stock
func LowStockProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		err := database.DB.WithContext(c.UserContext()).
			Preload("Category").
			Preload("Supplier").
			Where("stock_quantity < reorder_level").
			Order("stock_quantity ASC, id ASC").
			Find(&products).Error
		if err != nil {
			return err
		}
		return c.JSON(toProductResponses(products))
	}
}

func loadProduct(c *fiber.Ctx, id uint) (*models.Product, error) {
	var p models.Product
	err := database.DB.WithContext(c.UserContext()).
		Preload("Category").
		Preload("Supplier").
		First(&p, id).Error
	if err != nil {
		return nil, apperr.FromDB(err, "product")
	}
	return &p, nil
}

// checkReferences fails with NotFound when a given category or supplier is
// missing.
func checkReferences(tx *gorm.DB, categoryID, supplierID *uint) error {
	if categoryID != nil {
		if err := mustExist(tx, &models.ProductCategory{}, *categoryID, "product category"); err != nil {
			return err
		}
	}
	if supplierID != nil {
		if err := mustExist(tx, &models.Supplier{}, *supplierID, "supplier"); err != nil {
			return err
		}
	}
	return nil
}

func mustExist(tx *gorm.DB, model any, id uint, entity string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound(entity, id)
	}
	return nil
}

// optionalRef maps an explicit 0 to NULL.
func optionalRef(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

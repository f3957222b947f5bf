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

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const recentPurchaseCount = 10

// -------------------------
// Request Types
// -------------------------

type CreateSupplierRequest struct {
	Name          string        `json:"name"`
	ContactPerson string        `json:"contact_person"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Region        string        `json:"region"`
	Status        models.Status `json:"status"`
}

func (r *CreateSupplierRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Name == "" {
		return apperr.Invalid("name", "is required")
	}
	if r.Email != "" && !httpx.ValidEmail(r.Email) {
		return apperr.Invalid("email", "is not a valid address")
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
	if !r.Status.Valid() {
		return apperr.Invalid("status", "must be active or inactive")
	}
	return nil
}

type UpdateSupplierRequest struct {
	Name          *string        `json:"name"`
	ContactPerson *string        `json:"contact_person"`
	Email         *string        `json:"email"`
	Phone         *string        `json:"phone"`
	Address       *string        `json:"address"`
	Region        *string        `json:"region"`
	Status        *models.Status `json:"status"`
}

func (r *UpdateSupplierRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperr.Invalid("name", "must not be empty")
	}
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email != "" && !httpx.ValidEmail(email) {
			return apperr.Invalid("email", "is not a valid address")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperr.Invalid("status", "must be active or inactive")
	}
	return nil
}

// -------------------------
// Suppliers
// -------------------------

// GET /api/suppliers?search=&region=&status=
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).Model(&models.Supplier{})

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where("name ILIKE ? OR contact_person ILIKE ?", like, like)
		}
		if region := c.Query("region"); region != "" {
			dbq = dbq.Where("region = ?", region)
		}
		if status := models.Status(c.Query("status")); status.Valid() {
			dbq = dbq.Where("status = ?", status)
		}

		var suppliers []models.Supplier
		if err := dbq.Order("name ASC, id ASC").Find(&suppliers).Error; err != nil {
			return err
		}

		resp := make([]SupplierResponse, 0, len(suppliers))
		for _, s := range suppliers {
			resp = append(resp, toSupplierResponse(s))
		}
		return c.JSON(resp)
	}
}

// GET /api/suppliers/:id
// Includes the supplier's products and its latest purchases.
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}

		var supplier models.Supplier
		err = database.DB.WithContext(c.UserContext()).
			Preload("Products", func(tx *gorm.DB) *gorm.DB { return tx.Order("name ASC") }).
			Preload("Products.Category").
			Preload("Purchases", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("purchase_date DESC, id DESC").Limit(recentPurchaseCount)
			}).
			First(&supplier, id).Error
		if err != nil {
			return apperr.FromDB(err, "supplier")
		}
		return c.JSON(toSupplierResponse(supplier))
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		supplier := models.Supplier{
			Name:          body.Name,
			ContactPerson: strings.TrimSpace(body.ContactPerson),
			Email:         body.Email,
			Phone:         strings.TrimSpace(body.Phone),
			Address:       strings.TrimSpace(body.Address),
			Region:        strings.TrimSpace(body.Region),
			Status:        body.Status,
		}
		if err := database.DB.WithContext(c.UserContext()).Create(&supplier).Error; err != nil {
			return apperr.FromDB(err, "supplier")
		}

		resp := toSupplierResponse(supplier)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntitySupplier,
			EntityID:    supplier.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Supplier created: %s", supplier.Name),
			After:       resp,
		})
		return httpx.Created(c, resp)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body UpdateSupplierRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		tx := database.DB.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return tx.Error
		}
		defer tx.Rollback()

		var supplier models.Supplier
		if err := tx.First(&supplier, id).Error; err != nil {
			return apperr.FromDB(err, "supplier")
		}
		before := toSupplierResponse(supplier)

		if body.Name != nil {
			supplier.Name = strings.TrimSpace(*body.Name)
		}
		if body.ContactPerson != nil {
			supplier.ContactPerson = strings.TrimSpace(*body.ContactPerson)
		}
		if body.Email != nil {
			supplier.Email = strings.TrimSpace(*body.Email)
		}
		if body.Phone != nil {
			supplier.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Address != nil {
			supplier.Address = strings.TrimSpace(*body.Address)
		}
		if body.Region != nil {
			supplier.Region = strings.TrimSpace(*body.Region)
		}
		if body.Status != nil {
			supplier.Status = *body.Status
		}

		if err := tx.Save(&supplier).Error; err != nil {
			return apperr.FromDB(err, "supplier")
		}
		if err := tx.Commit().Error; err != nil {
			return err
		}

		resp := toSupplierResponse(supplier)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntitySupplier,
			EntityID:    supplier.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Supplier updated: %s", supplier.Name),
			Before:      before,
			After:       resp,
		})
		return c.JSON(resp)
	}
}

// DELETE /api/suppliers/:id
// The supplier's purchases are reversed out of stock before it goes.
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}

		var supplier models.Supplier
		if err := database.DB.WithContext(c.UserContext()).First(&supplier, id).Error; err != nil {
			return apperr.FromDB(err, "supplier")
		}
		if err := ledger.DeleteSupplier(c.UserContext(), database.DB, id); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntitySupplier,
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Supplier deleted: %s", supplier.Name),
			Before:      toSupplierResponse(supplier),
		})
		return httpx.Message(c, "Supplier deleted successfully")
	}
}

// GET /api/suppliers/meta/regions
func ListRegionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		regions := []string{}
		err := database.DB.WithContext(c.UserContext()).
			Model(&models.Supplier{}).
			Where("region <> ''").
			Distinct().
			Order("region ASC").
			Pluck("region", &regions).Error
		if err != nil {
			return err
		}
		return c.JSON(regions)
	}
}

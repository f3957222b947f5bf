package catalog

import (
	"fmt"
	"strings"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/audit"
	"inventory-backend/internal/database"
	"inventory-backend/internal/httpx"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *CategoryRequest) validate(create bool) error {
	if r.Name == nil {
		if create {
			return apperr.Invalid("name", "is required")
		}
		return nil
	}
	name := strings.TrimSpace(*r.Name)
	if name == "" {
		return apperr.Invalid("name", "must not be empty")
	}
	if len(name) > 100 {
		return apperr.Invalid("name", "must be at most 100 characters")
	}
	r.Name = &name
	return nil
}

// GET /api/products/meta/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.ProductCategory
		if err := database.DB.WithContext(c.UserContext()).Order("name ASC").Find(&categories).Error; err != nil {
			return err
		}

		resp := make([]CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			resp = append(resp, toCategoryResponse(cat))
		}
		return c.JSON(resp)
	}
}

// POST /api/products/meta/categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.validate(true); err != nil {
			return err
		}

		category := models.ProductCategory{Name: *body.Name}
		if body.Description != nil {
			category.Description = strings.TrimSpace(*body.Description)
		}
		if err := database.DB.WithContext(c.UserContext()).Create(&category).Error; err != nil {
			return apperr.FromDB(err, "product category")
		}

		resp := toCategoryResponse(category)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityProductCategory,
			EntityID:    category.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Category created: %s", category.Name),
			After:       resp,
		})
		return httpx.Created(c, resp)
	}
}

// PUT /api/products/meta/categories/:id
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body CategoryRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.validate(false); err != nil {
			return err
		}

		var category models.ProductCategory
		if err := database.DB.WithContext(c.UserContext()).First(&category, id).Error; err != nil {
			return apperr.FromDB(err, "product category")
		}
		before := toCategoryResponse(category)

		if body.Name != nil {
			category.Name = *body.Name
		}
		if body.Description != nil {
			category.Description = strings.TrimSpace(*body.Description)
		}
		if err := database.DB.WithContext(c.UserContext()).Save(&category).Error; err != nil {
			return apperr.FromDB(err, "product category")
		}

		resp := toCategoryResponse(category)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityProductCategory,
			EntityID:    category.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Category updated: %s", category.Name),
			Before:      before,
			After:       resp,
		})
		return c.JSON(resp)
	}
}

// DELETE /api/products/meta/categories/:id
// Products in the category keep existing without one.
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}

		var category models.ProductCategory
		if err := database.DB.WithContext(c.UserContext()).First(&category, id).Error; err != nil {
			return apperr.FromDB(err, "product category")
		}
		if err := database.DB.WithContext(c.UserContext()).Delete(&category).Error; err != nil {
			return apperr.FromDB(err, "product category")
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityProductCategory,
			EntityID:    category.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Category deleted: %s", category.Name),
			Before:      toCategoryResponse(category),
		})
		return httpx.Message(c, "Category deleted successfully")
	}
}

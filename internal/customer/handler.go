// Package customer serves customers and the customer product trend report.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

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
// Request/Response Types
// -------------------------

type CreateCustomerRequest struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	CustomerType string        `json:"customer_type"`
	Status       models.Status `json:"status"`
}

func (r *CreateCustomerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.CustomerType = strings.TrimSpace(r.CustomerType)
	if r.Name == "" {
		return apperr.Invalid("name", "is required")
	}
	if r.Email != "" && !httpx.ValidEmail(r.Email) {
		return apperr.Invalid("email", "is not a valid address")
	}
	if r.CustomerType == "" {
		r.CustomerType = models.DefaultCustomerType
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
	if !r.Status.Valid() {
		return apperr.Invalid("status", "must be active or inactive")
	}
	return nil
}

type UpdateCustomerRequest struct {
	Name         *string        `json:"name"`
	Email        *string        `json:"email"`
	Phone        *string        `json:"phone"`
	Address      *string        `json:"address"`
	CustomerType *string        `json:"customer_type"`
	Status       *models.Status `json:"status"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperr.Invalid("name", "must not be empty")
	}
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email != "" && !httpx.ValidEmail(email) {
			return apperr.Invalid("email", "is not a valid address")
		}
	}
	if r.CustomerType != nil && strings.TrimSpace(*r.CustomerType) == "" {
		return apperr.Invalid("customer_type", "must not be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperr.Invalid("status", "must be active or inactive")
	}
	return nil
}

type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderDate   string             `json:"order_date"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
}

type CustomerResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	CustomerType string         `json:"customer_type"`
	Status       models.Status  `json:"status"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	Orders       []OrderSummary `json:"orders,omitempty"`
}

func toResponse(cu models.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:           cu.ID,
		Name:         cu.Name,
		Email:        cu.Email,
		Phone:        cu.Phone,
		Address:      cu.Address,
		CustomerType: cu.CustomerType,
		Status:       cu.Status,
		CreatedAt:    cu.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    cu.UpdatedAt.Format(time.RFC3339),
	}
	for _, o := range cu.Orders {
		resp.Orders = append(resp.Orders, OrderSummary{
			ID:          o.ID,
			OrderDate:   o.OrderDate.Format(httpx.DateLayout),
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
		})
	}
	return resp
}

// recentOrderLimit is how many orders each customer carries in the list.
const recentOrderLimit = 5

// attachRecentOrders loads the newest orders of every customer with a single
// query and hangs them on the customers.
func attachRecentOrders(ctx context.Context, db *gorm.DB, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(customers))
	for _, cu := range customers {
		ids = append(ids, cu.ID)
	}

	var recent []models.CustomerOrder
	err := db.WithContext(ctx).Raw(`
		SELECT id, customer_id, order_date, total_amount, status
		FROM (
			SELECT id, customer_id, order_date, total_amount, status,
				ROW_NUMBER() OVER (PARTITION BY customer_id ORDER BY order_date DESC, id DESC) AS rn
			FROM customer_orders
			WHERE customer_id IN ?
		) o
		WHERE rn <= ?
		ORDER BY customer_id, order_date DESC, id DESC`, ids, recentOrderLimit).
		Scan(&recent).Error
	if err != nil {
		return err
	}

	byCustomer := make(map[uint][]models.CustomerOrder, len(customers))
	for _, o := range recent {
		byCustomer[o.CustomerID] = append(byCustomer[o.CustomerID], o)
	}
	for i := range customers {
		customers[i].Orders = byCustomer[customers[i].ID]
	}
	return nil
}

// -------------------------
// Customers
// -------------------------

// GET /api/customers?search=&customer_type=&status=
// Each customer comes with its five newest orders.
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).Model(&models.Customer{})

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
		}
		if ct := c.Query("customer_type"); ct != "" {
			dbq = dbq.Where("customer_type = ?", ct)
		}
		if status := models.Status(c.Query("status")); status.Valid() {
			dbq = dbq.Where("status = ?", status)
		}

		var customers []models.Customer
		if err := dbq.Order("name ASC, id ASC").Find(&customers).Error; err != nil {
			return err
		}
		if err := attachRecentOrders(c.UserContext(), database.DB, customers); err != nil {
			return err
		}

		resp := make([]CustomerResponse, 0, len(customers))
		for _, cu := range customers {
			resp = append(resp, toResponse(cu))
		}
		return c.JSON(resp)
	}
}

// GET /api/customers/:id
// Includes the customer's orders, newest first.
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}

		var cu models.Customer
		err = database.DB.WithContext(c.UserContext()).
			Preload("Orders", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_date DESC, id DESC") }).
			First(&cu, id).Error
		if err != nil {
			return apperr.FromDB(err, "customer")
		}
		return c.JSON(toResponse(cu))
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		cu := models.Customer{
			Name:         body.Name,
			Email:        body.Email,
			Phone:        strings.TrimSpace(body.Phone),
			Address:      strings.TrimSpace(body.Address),
			CustomerType: body.CustomerType,
			Status:       body.Status,
		}
		if err := database.DB.WithContext(c.UserContext()).Create(&cu).Error; err != nil {
			return apperr.FromDB(err, "customer")
		}

		resp := toResponse(cu)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityCustomer,
			EntityID:    cu.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Customer created: %s", cu.Name),
			After:       resp,
		})
		return httpx.Created(c, resp)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body UpdateCustomerRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		if err := body.Validate(); err != nil {
			return err
		}

		var cu models.Customer
		if err := database.DB.WithContext(c.UserContext()).First(&cu, id).Error; err != nil {
			return apperr.FromDB(err, "customer")
		}
		before := toResponse(cu)

		if body.Name != nil {
			cu.Name = strings.TrimSpace(*body.Name)
		}
		if body.Email != nil {
			cu.Email = strings.TrimSpace(*body.Email)
		}
		if body.Phone != nil {
			cu.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Address != nil {
			cu.Address = strings.TrimSpace(*body.Address)
		}
		if body.CustomerType != nil {
			cu.CustomerType = strings.TrimSpace(*body.CustomerType)
		}
		if body.Status != nil {
			cu.Status = *body.Status
		}
		if err := database.DB.WithContext(c.UserContext()).Save(&cu).Error; err != nil {
			return apperr.FromDB(err, "customer")
		}

		resp := toResponse(cu)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityCustomer,
			EntityID:    cu.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Customer updated: %s", cu.Name),
			Before:      before,
			After:       resp,
		})
		return c.JSON(resp)
	}
}

// DELETE /api/customers/:id
// The customer's orders are returned to stock before it goes.
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}

		var cu models.Customer
		if err := database.DB.WithContext(c.UserContext()).First(&cu, id).Error; err != nil {
			return apperr.FromDB(err, "customer")
		}
		if err := ledger.DeleteCustomer(c.UserContext(), database.DB, id); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityCustomer,
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Customer deleted: %s", cu.Name),
			Before:      toResponse(cu),
		})
		return httpx.Message(c, "Customer deleted successfully")
	}
}

// GET /api/customers/trends/product-analysis?customer_id=&trend=&format=xlsx
// Unknown filter values are ignored.
func ProductTrendsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f reports.TrendFilter
		if id, ok := httpx.QueryUint(c, "customer_id"); ok {
			f.CustomerID = id
		}
		if t := reports.Trend(strings.ToUpper(c.Query("trend"))); t.Valid() {
			f.Trend = t
		}

		rows, err := reports.CustomerTrends(c.UserContext(), database.DB, f)
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "customer_trends", reports.TrendSheet(rows))
		}
		return c.JSON(rows)
	}
}

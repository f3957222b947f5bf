// Package sales serves customer orders. Items sold leave stock when they are
// written and come back when they are removed.
package sales

import (
	"fmt"
	"strings"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/audit"
	"inventory-backend/internal/database"
	"inventory-backend/internal/httpx"
	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type ItemRequest struct {
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

func (r ItemRequest) price(field string) (decimal.Decimal, error) {
	if r.UnitPrice == nil {
		if field != "" {
			field += "."
		}
		return decimal.Zero, apperr.Invalid(field+"unit_price", "is required")
	}
	return *r.UnitPrice, nil
}

type CreateOrderRequest struct {
	CustomerID      uint          `json:"customer_id"`
	OrderDate       httpx.Date    `json:"order_date"`
	Status          string        `json:"status"`
	ShippingAddress string        `json:"shipping_address"`
	Notes           string        `json:"notes"`
	Items           []ItemRequest `json:"items"`
}

func (r CreateOrderRequest) toInput() (ledger.OrderInput, error) {
	in := ledger.OrderInput{
		CustomerID:      r.CustomerID,
		OrderDate:       r.OrderDate.Time,
		Status:          models.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
	}
	for i, it := range r.Items {
		price, err := it.price(fmt.Sprintf("items[%d]", i))
		if err != nil {
			return in, err
		}
		in.Items = append(in.Items, ledger.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: price})
	}
	return in, nil
}

type UpdateOrderRequest struct {
	CustomerID      *uint       `json:"customer_id"`
	OrderDate       *httpx.Date `json:"order_date"`
	Status          *string     `json:"status"`
	ShippingAddress *string     `json:"shipping_address"`
	Notes           *string     `json:"notes"`
}

func (r UpdateOrderRequest) toHeader() ledger.OrderHeader {
	h := ledger.OrderHeader{CustomerID: r.CustomerID}
	if r.OrderDate != nil {
		d := r.OrderDate.Time
		h.OrderDate = &d
	}
	if r.Status != nil {
		s := models.OrderStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		h.Status = &s
	}
	if r.ShippingAddress != nil {
		a := strings.TrimSpace(*r.ShippingAddress)
		h.ShippingAddress = &a
	}
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		h.Notes = &n
	}
	return h
}

type CustomerRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID              uint               `json:"id"`
	CustomerID      uint               `json:"customer_id"`
	Customer        *CustomerRef       `json:"customer"`
	OrderDate       string             `json:"order_date"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Status          models.OrderStatus `json:"status"`
	ShippingAddress string             `json:"shipping_address"`
	Notes           string             `json:"notes"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
	Items           []ItemResponse     `json:"items"`
}

func toItemResponse(it models.CustomerOrderItem) ItemResponse {
	resp := ItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Subtotal:  it.Subtotal,
	}
	if it.Product != nil {
		resp.ProductName = it.Product.Name
	}
	return resp
}

func toResponse(o models.CustomerOrder) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		OrderDate:       o.OrderDate.Format(httpx.DateLayout),
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
		Items:           make([]ItemResponse, 0, len(o.Items)),
	}
	if o.Customer != nil {
		resp.Customer = &CustomerRef{ID: o.Customer.ID, Name: o.Customer.Name}
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

// -------------------------
// Orders
// -------------------------

// GET /api/customer-orders?search=&customer_id=&status=&start_date=&end_date=
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).
			Model(&models.CustomerOrder{}).
			Preload("Customer").
			Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
			Preload("Items.Product")

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			dbq = dbq.Where("customer_id IN (?)",
				database.DB.Model(&models.Customer{}).Select("id").Where("name ILIKE ?", "%"+search+"%"))
		}
		if id, ok := httpx.QueryUint(c, "customer_id"); ok {
			dbq = dbq.Where("customer_id = ?", id)
		}
		if status := models.OrderStatus(c.Query("status")); status.Valid() {
			dbq = dbq.Where("status = ?", status)
		}
		if start, end, ok := httpx.QueryDateRange(c); ok {
			dbq = dbq.Where("order_date >= ? AND order_date < ?", start, end)
		}

		var orders []models.CustomerOrder
		if err := dbq.Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
			return err
		}

		resp := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, toResponse(o))
		}
		return c.JSON(resp)
	}
}

// GET /api/customer-orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		o, err := ledger.LoadOrder(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(*o))
	}
}

// POST /api/customer-orders
// Fails as a whole if any product is short of stock.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		in, err := body.toInput()
		if err != nil {
			return err
		}

		o, err := ledger.CreateOrder(c.UserContext(), database.DB, in)
		if err != nil {
			return err
		}

		resp := toResponse(*o)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrder,
			EntityID:    o.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Order created with %d items, total %s", len(o.Items), o.TotalAmount.StringFixed(2)),
			After:       resp,
		})
		return httpx.Created(c, resp)
	}
}

// PUT /api/customer-orders/:id
// Header fields only. Cancelling here does not return stock.
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body UpdateOrderRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}

		before, err := ledger.LoadOrder(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		o, err := ledger.UpdateOrderHeader(c.UserContext(), database.DB, id, body.toHeader())
		if err != nil {
			return err
		}

		resp := toResponse(*o)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrder,
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Order %d updated", id),
			Before:      toResponse(*before),
			After:       resp,
		})
		return c.JSON(resp)
	}
}

// DELETE /api/customer-orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		before, err := ledger.LoadOrder(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		if err := ledger.DeleteOrder(c.UserContext(), database.DB, id); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrder,
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Order %d deleted, stock restored", id),
			Before:      toResponse(*before),
		})
		return httpx.Message(c, "Order deleted successfully")
	}
}

// -------------------------
// Order items
// -------------------------

// POST /api/customer-orders/:id/items
func AddItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body ItemRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		price, err := body.price("")
		if err != nil {
			return err
		}

		item, err := ledger.AddOrderItem(c.UserContext(), database.DB, id, ledger.ItemInput{
			ProductID: body.ProductID,
			Quantity:  body.Quantity,
			UnitPrice: price,
		})
		if err != nil {
			return err
		}
		o, err := ledger.LoadOrder(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrderItem,
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Item added to order %d", id),
			After:       toItemResponse(*item),
		})
		return httpx.Created(c, toResponse(*o))
	}
}

// PUT /api/customer-orders/:id/items/:itemId
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		itemID, err := httpx.ParseID(c, "itemId")
		if err != nil {
			return err
		}
		var body ItemRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		price, err := body.price("")
		if err != nil {
			return err
		}

		item, err := ledger.UpdateOrderItem(c.UserContext(), database.DB, id, itemID, ledger.ItemChange{
			Quantity:  body.Quantity,
			UnitPrice: price,
		})
		if err != nil {
			return err
		}
		o, err := ledger.LoadOrder(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrderItem,
			EntityID:    itemID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Item %d of order %d updated", itemID, id),
			After:       toItemResponse(*item),
		})
		return c.JSON(toResponse(*o))
	}
}

// DELETE /api/customer-orders/:id/items/:itemId
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		itemID, err := httpx.ParseID(c, "itemId")
		if err != nil {
			return err
		}

		if err := ledger.DeleteOrderItem(c.UserContext(), database.DB, id, itemID); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityOrderItem,
			EntityID:    itemID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Item %d removed from order %d", itemID, id),
		})
		return httpx.Message(c, "Order item deleted successfully")
	}
}

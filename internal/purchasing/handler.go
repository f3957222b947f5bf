// Package purchasing serves supplier purchases and their items. Every change
// goes through the ledger so stock and totals follow the items.
package purchasing

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

// ItemRequest is one purchase line. unit_price is accepted as an alias of
// unit_cost.
type ItemRequest struct {
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

func (r ItemRequest) cost(field string) (decimal.Decimal, error) {
	switch {
	case r.UnitCost != nil:
		return *r.UnitCost, nil
	case r.UnitPrice != nil:
		return *r.UnitPrice, nil
	}
	if field != "" {
		field += "."
	}
	return decimal.Zero, apperr.Invalid(field+"unit_cost", "is required")
}

func (r ItemRequest) toInput(field string) (ledger.ItemInput, error) {
	cost, err := r.cost(field)
	if err != nil {
		return ledger.ItemInput{}, err
	}
	return ledger.ItemInput{ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: cost}, nil
}

type CreatePurchaseRequest struct {
	SupplierID   uint          `json:"supplier_id"`
	PurchaseDate httpx.Date    `json:"purchase_date"`
	Status       string        `json:"status"`
	Notes        string        `json:"notes"`
	Items        []ItemRequest `json:"items"`
}

func (r CreatePurchaseRequest) toInput() (ledger.PurchaseInput, error) {
	in := ledger.PurchaseInput{
		SupplierID:   r.SupplierID,
		PurchaseDate: r.PurchaseDate.Time,
		Status:       models.PurchaseStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Notes:        r.Notes,
	}
	for i, it := range r.Items {
		item, err := it.toInput(fmt.Sprintf("items[%d]", i))
		if err != nil {
			return in, err
		}
		in.Items = append(in.Items, item)
	}
	return in, nil
}

type UpdatePurchaseRequest struct {
	SupplierID   *uint       `json:"supplier_id"`
	PurchaseDate *httpx.Date `json:"purchase_date"`
	Status       *string     `json:"status"`
	Notes        *string     `json:"notes"`
}

func (r UpdatePurchaseRequest) toHeader() ledger.PurchaseHeader {
	h := ledger.PurchaseHeader{SupplierID: r.SupplierID}
	if r.PurchaseDate != nil {
		d := r.PurchaseDate.Time
		h.PurchaseDate = &d
	}
	if r.Status != nil {
		s := models.PurchaseStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		h.Status = &s
	}
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		h.Notes = &n
	}
	return h
}

type SupplierRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID          uint            `json:"id"`
	PurchaseID  uint            `json:"purchase_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PurchaseResponse struct {
	ID           uint                  `json:"id"`
	SupplierID   uint                  `json:"supplier_id"`
	Supplier     *SupplierRef          `json:"supplier"`
	PurchaseDate string                `json:"purchase_date"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Status       models.PurchaseStatus `json:"status"`
	Notes        string                `json:"notes"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	Items        []ItemResponse        `json:"items"`
}

func toItemResponse(it models.SupplierPurchaseItem) ItemResponse {
	resp := ItemResponse{
		ID:         it.ID,
		PurchaseID: it.PurchaseID,
		ProductID:  it.ProductID,
		Quantity:   it.Quantity,
		UnitCost:   it.UnitCost,
		Subtotal:   it.Subtotal,
	}
	if it.Product != nil {
		resp.ProductName = it.Product.Name
	}
	return resp
}

func toResponse(p models.SupplierPurchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		PurchaseDate: p.PurchaseDate.Format(httpx.DateLayout),
		TotalAmount:  p.TotalAmount,
		Status:       p.Status,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
		Items:        make([]ItemResponse, 0, len(p.Items)),
	}
	if p.Supplier != nil {
		resp.Supplier = &SupplierRef{ID: p.Supplier.ID, Name: p.Supplier.Name}
	}
	for _, it := range p.Items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

// -------------------------
// Purchases
// -------------------------

// GET /api/supplier-purchases?search=&supplier_id=&status=&start_date=&end_date=
func ListPurchasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).
			Model(&models.SupplierPurchase{}).
			Preload("Supplier").
			Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
			Preload("Items.Product")

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			dbq = dbq.Where("supplier_id IN (?)",
				database.DB.Model(&models.Supplier{}).Select("id").Where("name ILIKE ?", "%"+search+"%"))
		}
		if id, ok := httpx.QueryUint(c, "supplier_id"); ok {
			dbq = dbq.Where("supplier_id = ?", id)
		}
		if status := models.PurchaseStatus(c.Query("status")); status.Valid() {
			dbq = dbq.Where("status = ?", status)
		}
		if start, end, ok := httpx.QueryDateRange(c); ok {
			dbq = dbq.Where("purchase_date >= ? AND purchase_date < ?", start, end)
		}

		var purchases []models.SupplierPurchase
		if err := dbq.Order("purchase_date DESC, id DESC").Find(&purchases).Error; err != nil {
			return err
		}

		resp := make([]PurchaseResponse, 0, len(purchases))
		for _, p := range purchases {
			resp = append(resp, toResponse(p))
		}
		return c.JSON(resp)
	}
}

// GET /api/supplier-purchases/:id
func GetPurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		p, err := ledger.LoadPurchase(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(*p))
	}
}

// POST /api/supplier-purchases
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}
		in, err := body.toInput()
		if err != nil {
			return err
		}

		p, err := ledger.CreatePurchase(c.UserContext(), database.DB, in)
		if err != nil {
			return err
		}

		resp := toResponse(*p)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchase,
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Purchase created with %d items, total %s", len(p.Items), p.TotalAmount.StringFixed(2)),
			After:       resp,
		})
		return httpx.Created(c, resp)
	}
}

// PUT /api/supplier-purchases/:id
// Changes header fields only; items have their own routes.
func UpdatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		var body UpdatePurchaseRequest
		if err := httpx.ParseBody(c, &body); err != nil {
			return err
		}

		before, err := ledger.LoadPurchase(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		p, err := ledger.UpdatePurchaseHeader(c.UserContext(), database.DB, id, body.toHeader())
		if err != nil {
			return err
		}

		resp := toResponse(*p)
		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchase,
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Purchase %d updated", id),
			Before:      toResponse(*before),
			After:       resp,
		})
		return c.JSON(resp)
	}
}

// DELETE /api/supplier-purchases/:id
func DeletePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParseID(c, "id")
		if err != nil {
			return err
		}
		before, err := ledger.LoadPurchase(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}
		if err := ledger.DeletePurchase(c.UserContext(), database.DB, id); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchase,
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Purchase %d deleted, stock reversed", id),
			Before:      toResponse(*before),
		})
		return httpx.Message(c, "Purchase deleted successfully")
	}
}

// -------------------------
// Purchase items
// -------------------------

// POST /api/supplier-purchases/:id/items
// Responds with the whole purchase so the new total is visible.
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
		in, err := body.toInput("")
		if err != nil {
			return err
		}

		item, err := ledger.AddPurchaseItem(c.UserContext(), database.DB, id, in)
		if err != nil {
			return err
		}
		p, err := ledger.LoadPurchase(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchaseItem,
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Item added to purchase %d", id),
			After:       toItemResponse(*item),
		})
		return httpx.Created(c, toResponse(*p))
	}
}

// PUT /api/supplier-purchases/:id/items/:itemId
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
		cost, err := body.cost("")
		if err != nil {
			return err
		}

		item, err := ledger.UpdatePurchaseItem(c.UserContext(), database.DB, id, itemID, ledger.ItemChange{
			Quantity:  body.Quantity,
			UnitPrice: cost,
		})
		if err != nil {
			return err
		}
		p, err := ledger.LoadPurchase(c.UserContext(), database.DB, id)
		if err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchaseItem,
			EntityID:    itemID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Item %d of purchase %d updated", itemID, id),
			After:       toItemResponse(*item),
		})
		return c.JSON(toResponse(*p))
	}
}

// DELETE /api/supplier-purchases/:id/items/:itemId
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

		if err := ledger.DeletePurchaseItem(c.UserContext(), database.DB, id, itemID); err != nil {
			return err
		}

		audit.Record(c.UserContext(), audit.LogOptions{
			EntityType:  audit.EntityPurchaseItem,
			EntityID:    itemID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Item %d removed from purchase %d", itemID, id),
		})
		return httpx.Message(c, "Purchase item deleted successfully")
	}
}

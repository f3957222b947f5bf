// Package catalog serves products, product categories and suppliers.
package catalog

import (
	"time"

	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
)

type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SupplierRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *uint           `json:"category_id"`
	Category      *CategoryRef    `json:"category"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	ReorderLevel  int             `json:"reorder_level"`
	SupplierID    *uint           `json:"supplier_id"`
	Supplier      *SupplierRef    `json:"supplier"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PurchaseSummary struct {
	ID           uint                  `json:"id"`
	PurchaseDate string                `json:"purchase_date"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Status       models.PurchaseStatus `json:"status"`
}

type SupplierResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	ContactPerson string            `json:"contact_person"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Region        string            `json:"region"`
	Status        models.Status     `json:"status"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
	Products      []ProductResponse `json:"products,omitempty"`
	Purchases     []PurchaseSummary `json:"purchases,omitempty"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		Unit:          p.Unit,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		SupplierID:    p.SupplierID,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	if p.Category != nil {
		resp.Category = &CategoryRef{ID: p.Category.ID, Name: p.Category.Name}
	}
	if p.Supplier != nil {
		resp.Supplier = &SupplierRef{ID: p.Supplier.ID, Name: p.Supplier.Name}
	}
	return resp
}

func toProductResponses(ps []models.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, toProductResponse(p))
	}
	return resp
}

func toCategoryResponse(c models.ProductCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toSupplierResponse(s models.Supplier) SupplierResponse {
	resp := SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		Region:        s.Region,
		Status:        s.Status,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
	if len(s.Products) > 0 {
		resp.Products = toProductResponses(s.Products)
	}
	for _, p := range s.Purchases {
		resp.Purchases = append(resp.Purchases, PurchaseSummary{
			ID:           p.ID,
			PurchaseDate: p.PurchaseDate.Format("2006-01-02"),
			TotalAmount:  p.TotalAmount,
			Status:       p.Status,
		})
	}
	return resp
}

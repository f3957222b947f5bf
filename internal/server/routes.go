package server

import (
	"inventory-backend/internal/audit"
	"inventory-backend/internal/catalog"
	"inventory-backend/internal/config"
	"inventory-backend/internal/customer"
	"inventory-backend/internal/dashboard"
	"inventory-backend/internal/purchasing"
	"inventory-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
)

func registerRoutes(api fiber.Router, cfg *config.Config) {
	loc := cfg.Location()

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Products; the fixed paths go before /:id
	api.Get("/products/meta/categories", catalog.ListCategoriesHandler())
	api.Post("/products/meta/categories", catalog.CreateCategoryHandler())
	api.Put("/products/meta/categories/:id", catalog.UpdateCategoryHandler())
	api.Delete("/products/meta/categories/:id", catalog.DeleteCategoryHandler())
	api.Get("/products/alerts/low-stock", catalog.LowStockProductsHandler())

	api.Get("/products", catalog.ListProductsHandler())
	api.Post("/products", catalog.CreateProductHandler())
	api.Get("/products/:id", catalog.GetProductHandler())
	api.Put("/products/:id", catalog.UpdateProductHandler())
	api.Delete("/products/:id", catalog.DeleteProductHandler())

	// Suppliers
	api.Get("/suppliers/meta/regions", catalog.ListRegionsHandler())
	api.Get("/suppliers", catalog.ListSuppliersHandler())
	api.Post("/suppliers", catalog.CreateSupplierHandler())
	api.Get("/suppliers/:id", catalog.GetSupplierHandler())
	api.Put("/suppliers/:id", catalog.UpdateSupplierHandler())
	api.Delete("/suppliers/:id", catalog.DeleteSupplierHandler())

	// Customers
	api.Get("/customers/trends/product-analysis", customer.ProductTrendsHandler())
	api.Get("/customers", customer.ListCustomersHandler())
	api.Post("/customers", customer.CreateCustomerHandler())
	api.Get("/customers/:id", customer.GetCustomerHandler())
	api.Put("/customers/:id", customer.UpdateCustomerHandler())
	api.Delete("/customers/:id", customer.DeleteCustomerHandler())

	// Supplier purchases
	purchases := api.Group("/supplier-purchases")
	purchases.Get("/", purchasing.ListPurchasesHandler())
	purchases.Post("/", purchasing.CreatePurchaseHandler())
	purchases.Get("/:id", purchasing.GetPurchaseHandler())
	purchases.Put("/:id", purchasing.UpdatePurchaseHandler())
	purchases.Delete("/:id", purchasing.DeletePurchaseHandler())
	purchases.Post("/:id/items", purchasing.AddItemHandler())
	purchases.Put("/:id/items/:itemId", purchasing.UpdateItemHandler())
	purchases.Delete("/:id/items/:itemId", purchasing.DeleteItemHandler())

	// Customer orders
	orders := api.Group("/customer-orders")
	orders.Get("/", sales.ListOrdersHandler())
	orders.Post("/", sales.CreateOrderHandler())
	orders.Get("/:id", sales.GetOrderHandler())
	orders.Put("/:id", sales.UpdateOrderHandler())
	orders.Delete("/:id", sales.DeleteOrderHandler())
	orders.Post("/:id/items", sales.AddItemHandler())
	orders.Put("/:id/items/:itemId", sales.UpdateItemHandler())
	orders.Delete("/:id/items/:itemId", sales.DeleteItemHandler())

	// Dashboard
	dash := api.Group("/dashboard")
	dash.Get("/summary", dashboard.SummaryHandler(loc))
	dash.Get("/low-stock-alerts", dashboard.LowStockAlertsHandler())
	dash.Get("/top-selling-products", dashboard.TopSellingHandler())
	dash.Get("/stock-distribution", dashboard.StockDistributionHandler())
	dash.Get("/supply-risk-report", dashboard.SupplyRiskHandler())
	dash.Get("/purchase-forecast", dashboard.PurchaseForecastHandler(loc))

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())
}

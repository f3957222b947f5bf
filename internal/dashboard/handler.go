// Package dashboard serves the inventory reports. Each one answers JSON by
// default and a one-sheet workbook for ?format=xlsx.
package dashboard

import (
	"strings"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/internal/httpx"
	"inventory-backend/internal/models"
	"inventory-backend/internal/reports"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/summary
// The year to date is counted in loc.
func SummaryHandler(loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := reports.BuildSummary(c.UserContext(), database.DB, time.Now().In(loc))
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "dashboard_summary", reports.SummarySheet(sum))
		}
		return c.JSON(sum)
	}
}

// GET /api/dashboard/low-stock-alerts?threshold=&limit=
func LowStockAlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := reports.LowStockFilter{
			Threshold: httpx.QueryInt(c, "threshold", reports.CriticalStockBelow),
			Limit:     httpx.QueryInt(c, "limit", reports.DefaultAlertLimit),
		}
		if f.Threshold <= 0 {
			f.Threshold = reports.CriticalStockBelow
		}
		if f.Limit <= 0 {
			f.Limit = reports.DefaultAlertLimit
		}

		rows, err := reports.LowStock(c.UserContext(), database.DB, f)
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "low_stock_alerts", reports.LowStockSheet(rows))
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/top-selling-products?status=&limit=
func TopSellingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := reports.TopSellingFilter{Limit: httpx.QueryInt(c, "limit", reports.DefaultTopSellingMax)}
		if f.Limit <= 0 {
			f.Limit = reports.DefaultTopSellingMax
		}
		if status := models.OrderStatus(strings.ToLower(c.Query("status"))); status.Valid() {
			f.Status = status
		}

		rows, err := reports.TopSelling(c.UserContext(), database.DB, f)
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "top_selling_products", reports.TopSellingSheet(rows))
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/stock-distribution
func StockDistributionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := reports.Distribution(c.UserContext(), database.DB)
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "stock_distribution", reports.DistributionSheet(d))
		}
		return c.JSON(d)
	}
}

// GET /api/dashboard/supply-risk-report?status=&risk=
func SupplyRiskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f reports.SupplyRiskFilter
		if status := models.PurchaseStatus(strings.ToLower(c.Query("status"))); status.Valid() {
			f.Status = status
		}
		if risk := reports.RiskLevel(strings.ToLower(c.Query("risk"))); risk.Valid() {
			f.Risk = risk
		}

		rows, err := reports.SupplyRisk(c.UserContext(), database.DB, f)
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "supply_risk_report", reports.SupplyRiskSheet(rows))
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/purchase-forecast?status=all
// Only completed purchases count unless status=all.
func PurchaseForecastHandler(loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := reports.ForecastFilter{AllStatuses: strings.EqualFold(c.Query("status"), "all")}

		rows, err := reports.PurchaseForecast(c.UserContext(), database.DB, f, time.Now().In(loc))
		if err != nil {
			return err
		}
		if httpx.WantsXLSX(c) {
			return httpx.SendXLSX(c, "purchase_forecast", reports.ForecastSheet(rows))
		}
		return c.JSON(rows)
	}
}

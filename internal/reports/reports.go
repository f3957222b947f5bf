// Package reports builds the read-only views over products, purchases and
// orders. Nothing here writes to the store.
package reports

import (
	"context"
	"math"
	"sort"
	"time"

	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productWithCategory = "products p LEFT JOIN product_categories pc ON pc.id = p.category_id"

type LowStockFilter struct {
	Threshold int // zero compares against each product's reorder level
	Limit     int // zero means no limit
}

type LowStockRow struct {
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
	ReorderLevel  int             `json:"reorder_level"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Band          StockBand       `json:"band" gorm:"-"`
}

// LowStock lists products below their reorder level, or below f.Threshold
// when set, lowest stock first.
func LowStock(ctx context.Context, db *gorm.DB, f LowStockFilter) ([]LowStockRow, error) {
	q := db.WithContext(ctx).
		Table(productWithCategory).
		Select(`p.id AS product_id, p.name, COALESCE(pc.name, '') AS category,
			p.stock_quantity, p.reorder_level, p.unit_price`).
		Order("p.stock_quantity, p.id")
	if f.Threshold > 0 {
		q = q.Where("p.stock_quantity < ?", f.Threshold)
	} else {
		q = q.Where("p.stock_quantity < p.reorder_level")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows := []LowStockRow{}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Band = Band(rows[i].StockQuantity)
	}
	return rows, nil
}

type StockDistribution struct {
	Critical   int64 `json:"critical"`
	Low        int64 `json:"low"`
	Sufficient int64 `json:"sufficient"`
	Total      int64 `json:"total"`
}

func Distribution(ctx context.Context, db *gorm.DB) (StockDistribution, error) {
	var d StockDistribution
	err := db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE stock_quantity < @critical) AS critical,
			COUNT(*) FILTER (WHERE stock_quantity >= @critical AND stock_quantity < @sufficient) AS low,
			COUNT(*) FILTER (WHERE stock_quantity >= @sufficient) AS sufficient,
			COUNT(*) AS total
		FROM products`,
		map[string]any{"critical": CriticalStockBelow, "sufficient": SufficientStockFrom},
	).Scan(&d).Error
	return d, err
}

type TopSellingFilter struct {
	Status models.OrderStatus // empty means every order
	Limit  int
}

type TopSellingRow struct {
	ProductID        uint            `json:"product_id"`
	ProductName      string          `json:"product_name"`
	ProductCategory  string          `json:"product_category"`
	ProductUnitPrice decimal.Decimal `json:"product_unit_price"`
	TotalSold        int64           `json:"total_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	OrderCount       int64           `json:"order_count"`
}

func TopSelling(ctx context.Context, db *gorm.DB, f TopSellingFilter) ([]TopSellingRow, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultTopSellingMax
	}
	q := db.WithContext(ctx).
		Table("customer_order_items oi").
		Joins("JOIN customer_orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Joins("LEFT JOIN product_categories pc ON pc.id = p.category_id").
		Select(`oi.product_id, p.name AS product_name, COALESCE(pc.name, '') AS product_category,
			p.unit_price AS product_unit_price, SUM(oi.quantity) AS total_sold,
			SUM(oi.subtotal) AS total_revenue, COUNT(DISTINCT oi.order_id) AS order_count`).
		Group("oi.product_id, p.name, pc.name, p.unit_price").
		Order("total_sold DESC, oi.product_id").
		Limit(f.Limit)
	if f.Status != "" {
		q = q.Where("o.status = ?", f.Status)
	}

	rows := []TopSellingRow{}
	err := q.Scan(&rows).Error
	return rows, err
}

type Summary struct {
	TotalProducts       int64           `json:"total_products"`
	LowStockCount       int64           `json:"low_stock_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	YTDOrdersCount      int64           `json:"ytd_orders_count"`
	YTDRevenue          decimal.Decimal `json:"ytd_revenue"`
}

// BuildSummary computes the dashboard figures. The year to date starts on
// January 1st of now's year in now's location; cancelled orders are left out.
func BuildSummary(ctx context.Context, db *gorm.DB, now time.Time) (Summary, error) {
	var s Summary
	db = db.WithContext(ctx)

	err := db.Raw(`
		SELECT
			COUNT(*) AS total_products,
			COUNT(*) FILTER (WHERE stock_quantity < reorder_level) AS low_stock_count,
			COALESCE(SUM(stock_quantity * unit_price), 0) AS total_inventory_value
		FROM products`).Scan(&s).Error
	if err != nil {
		return s, err
	}

	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	var ytd struct {
		Count   int64
		Revenue decimal.Decimal
	}
	err = db.Raw(`
		SELECT COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue
		FROM customer_orders
		WHERE order_date >= ? AND order_date < ? AND status <> ?`,
		startOfYear, startOfYear.AddDate(1, 0, 0), models.OrderCancelled).Scan(&ytd).Error
	if err != nil {
		return s, err
	}

	s.TotalInventoryValue = s.TotalInventoryValue.Round(2)
	s.YTDOrdersCount = ytd.Count
	s.YTDRevenue = ytd.Revenue.Round(2)
	return s, nil
}

type SupplyRiskFilter struct {
	Status models.PurchaseStatus // empty counts every recorded purchase
	Risk   RiskLevel             // empty keeps every level
}

type SupplyRiskRow struct {
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	SupplierCount int             `json:"supplier_count"`
	RiskLevel     RiskLevel       `json:"risk_level" gorm:"-"`
}

// SupplyRisk counts the distinct suppliers each product was purchased from,
// fewest suppliers first.
func SupplyRisk(ctx context.Context, db *gorm.DB, f SupplyRiskFilter) ([]SupplyRiskRow, error) {
	purchaseJoin := "LEFT JOIN supplier_purchases sp ON sp.id = spi.purchase_id"
	args := []any{}
	if f.Status != "" {
		purchaseJoin += " AND sp.status = ?"
		args = append(args, f.Status)
	}

	var rows []SupplyRiskRow
	err := db.WithContext(ctx).
		Table(productWithCategory).
		Joins("LEFT JOIN supplier_purchase_items spi ON spi.product_id = p.id").
		Joins(purchaseJoin, args...).
		Select(`p.id AS product_id, p.name, COALESCE(pc.name, '') AS category, p.unit_price,
			p.stock_quantity, COUNT(DISTINCT sp.supplier_id) AS supplier_count`).
		Group("p.id, p.name, pc.name, p.unit_price, p.stock_quantity").
		Order("supplier_count, p.name, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]SupplyRiskRow, 0, len(rows))
	for _, r := range rows {
		r.RiskLevel = Risk(r.SupplierCount)
		if f.Risk != "" && r.RiskLevel != f.Risk {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type ForecastFilter struct {
	// AllStatuses widens the history from completed purchases to every
	// purchase that was not cancelled.
	AllStatuses bool
}

type ForecastRow struct {
	ProductID               uint                `json:"product_id"`
	Name                    string              `json:"name"`
	Category                string              `json:"category"`
	StockQuantity           int                 `json:"stock_quantity"`
	ReorderLevel            int                 `json:"reorder_level"`
	UnitPrice               decimal.Decimal     `json:"unit_price"`
	TotalPurchases          int64               `json:"total_purchases"`
	AvgPurchaseQty          decimal.NullDecimal `json:"avg_purchase_qty"`
	ForecastedMonthlyQty    *int64              `json:"forecasted_monthly_qty"`
	LastPurchaseDate        *time.Time          `json:"last_purchase_date"`
	DaysSincePurchase       *int64              `json:"days_since_purchase"`
	AvgDaysBetweenPurchases *int64              `json:"avg_days_between_purchases"`
	PurchasePriority        PurchasePriority    `json:"purchase_priority"`
	EstimatedMonthlyCost    decimal.NullDecimal `json:"estimated_monthly_cost"`
}

type forecastAgg struct {
	ProductID         uint
	Name              string
	Category          string
	StockQuantity     int
	ReorderLevel      int
	UnitPrice         decimal.Decimal
	TotalPurchases    int64
	AvgPurchaseQty    decimal.NullDecimal
	FirstPurchaseDate *time.Time
	LastPurchaseDate  *time.Time
	PurchaseMonths    int64
}

// PurchaseForecast projects monthly purchase needs from purchase history.
// Rows come URGENT first, then SOON, then PLANNED; within a priority the
// product bought longest ago (or never) comes first.
func PurchaseForecast(ctx context.Context, db *gorm.DB, f ForecastFilter, now time.Time) ([]ForecastRow, error) {
	history := "sp.status = 'completed'"
	if f.AllStatuses {
		history = "sp.status <> 'cancelled'"
	}

	var aggs []forecastAgg
	err := db.WithContext(ctx).Raw(`
		SELECT p.id AS product_id, p.name, COALESCE(pc.name, '') AS category,
			p.stock_quantity, p.reorder_level, p.unit_price,
			COUNT(h.item_id) AS total_purchases,
			AVG(h.quantity) AS avg_purchase_qty,
			MIN(h.purchase_date) AS first_purchase_date,
			MAX(h.purchase_date) AS last_purchase_date,
			COUNT(DISTINCT date_trunc('month', h.purchase_date AT TIME ZONE ?)) AS purchase_months
		FROM `+productWithCategory+`
		LEFT JOIN (
			SELECT spi.id AS item_id, spi.product_id, spi.quantity, sp.purchase_date
			FROM supplier_purchase_items spi
			JOIN supplier_purchases sp ON sp.id = spi.purchase_id
			WHERE `+history+`
		) h ON h.product_id = p.id
		GROUP BY p.id, p.name, pc.name, p.stock_quantity, p.reorder_level, p.unit_price`,
		zoneName(now)).Scan(&aggs).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ForecastRow, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, forecast(a, now))
	}
	sortForecast(rows)
	return rows, nil
}

func forecast(a forecastAgg, now time.Time) ForecastRow {
	r := ForecastRow{
		ProductID:        a.ProductID,
		Name:             a.Name,
		Category:         a.Category,
		StockQuantity:    a.StockQuantity,
		ReorderLevel:     a.ReorderLevel,
		UnitPrice:        a.UnitPrice,
		TotalPurchases:   a.TotalPurchases,
		LastPurchaseDate: a.LastPurchaseDate,
		PurchasePriority: Priority(a.StockQuantity, a.ReorderLevel),
	}
	if a.AvgPurchaseQty.Valid {
		avg := a.AvgPurchaseQty.Decimal
		qty := avg.Round(0).IntPart()
		r.AvgPurchaseQty = decimal.NewNullDecimal(avg.Round(2))
		r.ForecastedMonthlyQty = &qty
		r.EstimatedMonthlyCost = decimal.NewNullDecimal(a.UnitPrice.Mul(decimal.NewFromInt(qty)).Round(2))
	}
	if a.LastPurchaseDate != nil {
		days := roundDays(now.Sub(*a.LastPurchaseDate))
		r.DaysSincePurchase = &days
	}
	if a.FirstPurchaseDate != nil && a.LastPurchaseDate != nil && a.PurchaseMonths > 0 {
		span := a.LastPurchaseDate.Sub(*a.FirstPurchaseDate)
		between := roundDays(span / time.Duration(a.PurchaseMonths))
		r.AvgDaysBetweenPurchases = &between
	}
	return r
}

func sortForecast(rows []ForecastRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ra, rb := a.PurchasePriority.rank(), b.PurchasePriority.rank(); ra != rb {
			return ra < rb
		}
		switch {
		case a.LastPurchaseDate == nil && b.LastPurchaseDate != nil:
			return true
		case a.LastPurchaseDate != nil && b.LastPurchaseDate == nil:
			return false
		case a.LastPurchaseDate != nil && !a.LastPurchaseDate.Equal(*b.LastPurchaseDate):
			return a.LastPurchaseDate.Before(*b.LastPurchaseDate)
		}
		return a.ProductID < b.ProductID
	})
}

func roundDays(d time.Duration) int64 {
	return int64(math.Round(d.Hours() / 24))
}

type TrendFilter struct {
	CustomerID uint  // zero keeps every customer
	Trend      Trend // empty keeps every trend
}

type TrendRow struct {
	CustomerID       uint     `json:"customer_id"`
	CustomerName     string   `json:"customer_name"`
	ProductID        uint     `json:"product_id"`
	ProductName      string   `json:"product_name"`
	EarlierQty       int64    `json:"earlier_qty"`
	RecentQty        int64    `json:"recent_qty"`
	EarlierOrders    int64    `json:"earlier_orders"`
	RecentOrders     int64    `json:"recent_orders"`
	QtyChange        int64    `json:"qty_change" gorm:"-"`
	ChangePercentage *float64 `json:"change_percentage" gorm:"-"`
	Trend            Trend    `json:"trend" gorm:"-"`
}

// CustomerTrends compares, per customer and product, the quantities of
// completed orders placed before the customer's mean order date with those
// placed on or after it.
func CustomerTrends(ctx context.Context, db *gorm.DB, f TrendFilter) ([]TrendRow, error) {
	customerCond := ""
	args := []any{models.OrderCompleted}
	if f.CustomerID != 0 {
		customerCond = "AND o.customer_id = ?"
		args = append(args, f.CustomerID)
	}

	var rows []TrendRow
	err := db.WithContext(ctx).Raw(`
		WITH completed AS (
			SELECT o.id, o.customer_id, o.order_date, EXTRACT(EPOCH FROM o.order_date) AS epoch
			FROM customer_orders o
			WHERE o.status = ? `+customerCond+`
		), split AS (
			SELECT customer_id, AVG(epoch) AS mean_epoch
			FROM completed
			GROUP BY customer_id
		)
		SELECT c.id AS customer_id, c.name AS customer_name,
			p.id AS product_id, p.name AS product_name,
			COALESCE(SUM(oi.quantity) FILTER (WHERE co.epoch < s.mean_epoch), 0) AS earlier_qty,
			COALESCE(SUM(oi.quantity) FILTER (WHERE co.epoch >= s.mean_epoch), 0) AS recent_qty,
			COUNT(DISTINCT co.id) FILTER (WHERE co.epoch < s.mean_epoch) AS earlier_orders,
			COUNT(DISTINCT co.id) FILTER (WHERE co.epoch >= s.mean_epoch) AS recent_orders
		FROM completed co
		JOIN split s ON s.customer_id = co.customer_id
		JOIN customer_order_items oi ON oi.order_id = co.id
		JOIN customers c ON c.id = co.customer_id
		JOIN products p ON p.id = oi.product_id
		GROUP BY c.id, c.name, p.id, p.name
		HAVING SUM(oi.quantity) > 0
		ORDER BY c.name, c.id, p.name, p.id`, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]TrendRow, 0, len(rows))
	for _, r := range rows {
		r.QtyChange = r.RecentQty - r.EarlierQty
		r.ChangePercentage = ChangePercentage(r.EarlierQty, r.RecentQty)
		r.Trend = ClassifyTrend(r.EarlierQty, r.RecentQty)
		if f.Trend != "" && r.Trend != f.Trend {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// zoneName is the IANA name Postgres should bucket months in.
func zoneName(now time.Time) string {
	name := now.Location().String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

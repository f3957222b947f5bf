package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet is a report flattened into rows for spreadsheet export.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// WriteXLSX writes s as a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if s.Name != "" && s.Name != sheet {
		if err := f.SetSheetName(sheet, s.Name); err != nil {
			return err
		}
		sheet = s.Name
	}

	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, row := range s.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}

func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		return x.Decimal.InexactFloat64()
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.Format("2006-01-02")
	case fmt.Stringer:
		return x.String()
	}
	return v
}

func LowStockSheet(rows []LowStockRow) Sheet {
	s := Sheet{
		Name:   "Low stock",
		Header: []string{"Product ID", "Name", "Category", "Stock", "Reorder level", "Unit price", "Band"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []any{r.ProductID, r.Name, r.Category, r.StockQuantity, r.ReorderLevel, r.UnitPrice, string(r.Band)})
	}
	return s
}

func DistributionSheet(d StockDistribution) Sheet {
	return Sheet{
		Name:   "Stock distribution",
		Header: []string{"Band", "Products"},
		Rows: [][]any{
			{string(BandCritical), d.Critical},
			{string(BandLow), d.Low},
			{string(BandSufficient), d.Sufficient},
			{"total", d.Total},
		},
	}
}

func TopSellingSheet(rows []TopSellingRow) Sheet {
	s := Sheet{
		Name:   "Top selling",
		Header: []string{"Product ID", "Product", "Category", "Unit price", "Sold", "Revenue", "Orders"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []any{r.ProductID, r.ProductName, r.ProductCategory, r.ProductUnitPrice, r.TotalSold, r.TotalRevenue, r.OrderCount})
	}
	return s
}

func SummarySheet(sum Summary) Sheet {
	return Sheet{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Total products", sum.TotalProducts},
			{"Low stock products", sum.LowStockCount},
			{"Inventory value", sum.TotalInventoryValue},
			{"Orders this year", sum.YTDOrdersCount},
			{"Revenue this year", sum.YTDRevenue},
		},
	}
}

func SupplyRiskSheet(rows []SupplyRiskRow) Sheet {
	s := Sheet{
		Name:   "Supply risk",
		Header: []string{"Product ID", "Name", "Category", "Unit price", "Stock", "Suppliers", "Risk"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []any{r.ProductID, r.Name, r.Category, r.UnitPrice, r.StockQuantity, r.SupplierCount, string(r.RiskLevel)})
	}
	return s
}

func ForecastSheet(rows []ForecastRow) Sheet {
	s := Sheet{
		Name: "Purchase forecast",
		Header: []string{
			"Product ID", "Name", "Category", "Stock", "Reorder level", "Purchases", "Avg qty",
			"Forecast qty", "Last purchase", "Days since", "Avg days between", "Priority", "Est. monthly cost",
		},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []any{
			r.ProductID, r.Name, r.Category, r.StockQuantity, r.ReorderLevel, r.TotalPurchases, r.AvgPurchaseQty,
			r.ForecastedMonthlyQty, r.LastPurchaseDate, r.DaysSincePurchase, r.AvgDaysBetweenPurchases,
			string(r.PurchasePriority), r.EstimatedMonthlyCost,
		})
	}
	return s
}

func TrendSheet(rows []TrendRow) Sheet {
	s := Sheet{
		Name: "Customer trends",
		Header: []string{
			"Customer ID", "Customer", "Product ID", "Product", "Earlier qty", "Recent qty",
			"Earlier orders", "Recent orders", "Change", "Change %", "Trend",
		},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []any{
			r.CustomerID, r.CustomerName, r.ProductID, r.ProductName, r.EarlierQty, r.RecentQty,
			r.EarlierOrders, r.RecentOrders, r.QtyChange, r.ChangePercentage, string(r.Trend),
		})
	}
	return s
}

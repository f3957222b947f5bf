package reports

import "github.com/shopspring/decimal"

// Stock band limits.
const (
	CriticalStockBelow   = 100
	SufficientStockFrom  = 300
	DefaultAlertLimit    = 20
	DefaultTopSellingMax = 10
)

type StockBand string

const (
	BandCritical   StockBand = "critical"
	BandLow        StockBand = "low"
	BandSufficient StockBand = "sufficient"
)

func Band(stock int) StockBand {
	switch {
	case stock < CriticalStockBelow:
		return BandCritical
	case stock < SufficientStockFrom:
		return BandLow
	default:
		return BandSufficient
	}
}

type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// Risk grades a product by how many distinct suppliers it has been bought from.
func Risk(suppliers int) RiskLevel {
	switch {
	case suppliers <= 0:
		return RiskCritical
	case suppliers == 1:
		return RiskHigh
	case suppliers == 2:
		return RiskMedium
	default:
		return RiskLow
	}
}

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

type PurchasePriority string

const (
	PriorityUrgent  PurchasePriority = "URGENT"
	PrioritySoon    PurchasePriority = "SOON"
	PriorityPlanned PurchasePriority = "PLANNED"
)

// Priority is URGENT below the reorder level and SOON below one and a half
// times it.
func Priority(stock, reorderLevel int) PurchasePriority {
	switch {
	case stock < reorderLevel:
		return PriorityUrgent
	case 2*stock < 3*reorderLevel:
		return PrioritySoon
	default:
		return PriorityPlanned
	}
}

func (p PurchasePriority) rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PrioritySoon:
		return 1
	default:
		return 2
	}
}

type Trend string

const (
	TrendIncreasing Trend = "INCREASING"
	TrendDeclining  Trend = "DECLINING"
	TrendStable     Trend = "STABLE"
)

// ClassifyTrend compares recent against earlier quantity: more than 1.2x is
// increasing, less than 0.8x is declining.
func ClassifyTrend(earlier, recent int64) Trend {
	switch {
	case 5*recent > 6*earlier:
		return TrendIncreasing
	case 5*recent < 4*earlier:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func (t Trend) Valid() bool {
	return t == TrendIncreasing || t == TrendDeclining || t == TrendStable
}

// ChangePercentage is (recent-earlier)/earlier in percent, one decimal place.
// It is nil when there is nothing earlier to compare with.
func ChangePercentage(earlier, recent int64) *float64 {
	if earlier == 0 {
		return nil
	}
	pct := decimal.NewFromInt(recent - earlier).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(earlier)).
		Round(1).
		InexactFloat64()
	return &pct
}

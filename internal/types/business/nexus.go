package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementWindow is the date range a state's economic nexus thresholds are
// measured over.
type MeasurementWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls inside the window, inclusive of both ends.
func (w MeasurementWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// StateActivity aggregates a client's sales activity in one state.
type StateActivity struct {
	StateCode        string          `json:"state_code"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TaxableSales     decimal.Decimal `json:"taxable_sales"`
	MarketplaceSales decimal.Decimal `json:"marketplace_sales"`
	ExemptSales      decimal.Decimal `json:"exempt_sales"`
	TransactionCount int             `json:"transaction_count"`
	FirstSaleDate    *time.Time      `json:"first_sale_date,omitempty"`
	LastSaleDate     *time.Time      `json:"last_sale_date,omitempty"`
}

// ThresholdProjection estimates when a state's economic nexus threshold will
// be crossed based on recent sales velocity.
type ThresholdProjection struct {
	DaysUntilThreshold int             `json:"days_until_threshold"`
	ProjectedCrossDate time.Time       `json:"projected_cross_date"`
	DailySalesVelocity decimal.Decimal `json:"daily_sales_velocity"`
	RemainingToCross   decimal.Decimal `json:"remaining_to_cross"`
}

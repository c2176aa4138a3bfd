package responses

import (
	"time"

	"github.com/google/uuid"
)

// LiabilityEstimateResponse represents a per-state liability estimate
type LiabilityEstimateResponse struct {
	EstimateID             uuid.UUID `json:"estimate_id"`
	AnalysisID             uuid.UUID `json:"analysis_id"`
	NexusResultID          uuid.UUID `json:"nexus_result_id"`
	StateCode              string    `json:"state_code"`
	PeriodStart            string    `json:"period_start"`
	PeriodEnd              string    `json:"period_end"`
	GrossSales             string    `json:"gross_sales"`
	ExemptSales            string    `json:"exempt_sales"`
	MarketplaceSales       string    `json:"marketplace_sales"`
	TaxableSales           string    `json:"taxable_sales"`
	StateTaxRate           string    `json:"state_tax_rate"`
	AvgLocalTaxRate        string    `json:"avg_local_tax_rate"`
	EstimatedLiabilityLow  string    `json:"estimated_liability_low"`
	EstimatedLiabilityMid  string    `json:"estimated_liability_mid"`
	EstimatedLiabilityHigh string    `json:"estimated_liability_high"`
	LookbackPeriodMonths   int32     `json:"lookback_period_months"`
	LookbackStartDate      *string   `json:"lookback_start_date,omitempty"`
	LookbackEndDate        *string   `json:"lookback_end_date,omitempty"`
	LookbackLiability      *string   `json:"lookback_liability,omitempty"`
	PenaltyAmount          *string   `json:"penalty_amount,omitempty"`
	InterestAmount         *string   `json:"interest_amount,omitempty"`
	TotalWithPenalties     *string   `json:"total_with_penalties,omitempty"`
	ExemptionRateAssumed   string    `json:"exemption_rate_assumed"`
	RiskLevel              string    `json:"risk_level"`
	Recommendation         *string   `json:"recommendation,omitempty"`
	CalculationAssumptions *string   `json:"calculation_assumptions,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// LiabilitySummaryResponse aggregates liability estimates for an analysis
type LiabilitySummaryResponse struct {
	AnalysisID         uuid.UUID                   `json:"analysis_id"`
	TotalLiabilityLow  string                      `json:"total_liability_low"`
	TotalLiabilityMid  string                      `json:"total_liability_mid"`
	TotalLiabilityHigh string                      `json:"total_liability_high"`
	HighRiskStates     []string                    `json:"high_risk_states"`
	Estimates          []LiabilityEstimateResponse `json:"estimates"`
}

package responses

import (
	"time"

	"github.com/google/uuid"
)

// NexusResultResponse represents a per-state nexus determination
type NexusResultResponse struct {
	ResultID             uuid.UUID `json:"result_id"`
	AnalysisID           uuid.UUID `json:"analysis_id"`
	StateCode            string    `json:"state_code"`
	NexusStatus          string    `json:"nexus_status"`
	NexusEstablishedDate *string   `json:"nexus_established_date,omitempty"`
	PhysicalNexus        bool      `json:"physical_nexus"`
	EconomicNexus        bool      `json:"economic_nexus"`
	TotalSales           string    `json:"total_sales"`
	TaxableSales         string    `json:"taxable_sales"`
	TransactionCount     int32     `json:"transaction_count"`
	SalesThreshold       *string   `json:"sales_threshold,omitempty"`
	TransactionThreshold *int32    `json:"transaction_threshold,omitempty"`
	ThresholdPercentage  *string   `json:"threshold_percentage,omitempty"`
	DaysUntilThreshold   *int32    `json:"days_until_threshold,omitempty"`
	ConfidenceLevel      string    `json:"confidence_level"`
	RegistrationDeadline *string   `json:"registration_deadline,omitempty"`
	Recommendation       *string   `json:"recommendation,omitempty"`
	CalculationNotes     *string   `json:"calculation_notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// NexusSummaryResponse aggregates nexus determinations for an analysis
type NexusSummaryResponse struct {
	AnalysisID      uuid.UUID             `json:"analysis_id"`
	StatesAnalyzed  int                   `json:"states_analyzed"`
	StatesWithNexus int                   `json:"states_with_nexus"`
	StatesApproach  int                   `json:"states_approaching_threshold"`
	Results         []NexusResultResponse `json:"results"`
}

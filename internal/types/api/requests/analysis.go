package requests

// CreateAnalysisRequest represents the request body for creating an analysis
type CreateAnalysisRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"` // YYYY-MM-DD
	PeriodEnd   string `json:"period_end" binding:"required"`   // YYYY-MM-DD
}

// CreateBusinessProfileRequest represents the request body for attaching a
// business profile to an analysis
type CreateBusinessProfileRequest struct {
	LegalName           string                    `json:"legal_name" binding:"required"`
	HasPhysicalPresence bool                      `json:"has_physical_presence"`
	Locations           []PhysicalLocationRequest `json:"locations,omitempty"`
}

// PhysicalLocationRequest represents one physical presence location
type PhysicalLocationRequest struct {
	LocationType    string  `json:"location_type" binding:"required,oneof=office warehouse retail_store manufacturing inventory_storage remote_employee other"`
	StateCode       string  `json:"state_code" binding:"required,len=2"`
	City            *string `json:"city,omitempty"`
	EstablishedDate *string `json:"established_date,omitempty"` // YYYY-MM-DD
	ClosedDate      *string `json:"closed_date,omitempty"`      // YYYY-MM-DD
}

// UpsertNexusRuleRequest represents the request body for creating or updating
// a state's economic nexus rule
type UpsertNexusRuleRequest struct {
	StateCode                string  `json:"state_code" binding:"required,len=2"`
	StateName                *string `json:"state_name,omitempty"`
	SalesThreshold           *string `json:"sales_threshold,omitempty"`
	TransactionThreshold     *int32  `json:"transaction_threshold,omitempty"`
	ThresholdPolicy          string  `json:"threshold_policy" binding:"required,oneof=sales_only transactions_only either both"`
	MeasurementPeriod        string  `json:"measurement_period" binding:"required,oneof=calendar_year previous_calendar_year rolling_12_months"`
	MarketplaceSalesExcluded bool    `json:"marketplace_sales_excluded"`
	EffectiveDate            string  `json:"effective_date" binding:"required"` // YYYY-MM-DD
	DaysToRegister           *int32  `json:"days_to_register,omitempty"`
	RuleDescription          *string `json:"rule_description,omitempty"`
}

// EstimateLiabilityRequest carries optional overrides for liability estimation
type EstimateLiabilityRequest struct {
	ExemptionRate        *string `json:"exemption_rate,omitempty"`
	IncludePenalties     *bool   `json:"include_penalties,omitempty"`
	CustomLookbackMonths *int32  `json:"custom_lookback_months,omitempty"`
}

package params

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAnalysisParams contains parameters for creating a new analysis
type CreateAnalysisParams struct {
	TenantID    uuid.UUID
	ClientName  string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// BusinessProfileParams contains parameters for attaching a business profile
// to an analysis
type BusinessProfileParams struct {
	AnalysisID          uuid.UUID
	LegalName           string
	HasPhysicalPresence bool
	Locations           []PhysicalLocationParams
}

// PhysicalLocationParams describes one physical presence location
type PhysicalLocationParams struct {
	LocationType    string
	StateCode       string
	City            *string
	EstablishedDate *time.Time
	ClosedDate      *time.Time
}

// LiabilityParams contains tunable assumptions for liability estimation
type LiabilityParams struct {
	ExemptionRate        *decimal.Decimal
	IncludePenalties     bool
	CustomLookbackMonths *int32
}

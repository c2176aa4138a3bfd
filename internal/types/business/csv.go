package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowValidationError describes why a single CSV row was rejected.
// RowNumber counts from 2 so it matches the row's position in the file
// including the header line.
type RowValidationError struct {
	RowNumber int               `json:"row_number"`
	Errors    []string          `json:"errors"`
	Data      map[string]string `json:"data,omitempty"`
}

// DataQualityReport summarizes the validation outcome for an uploaded file.
type DataQualityReport struct {
	TotalRows         int                  `json:"total_rows"`
	ValidRows         int                  `json:"valid_rows"`
	InvalidRows       int                  `json:"invalid_rows"`
	QualityPercentage float64              `json:"quality_percentage"`
	ValidationErrors  []RowValidationError `json:"validation_errors"`
}

// NormalizedTransaction is a validated, normalized sales record ready for
// persistence.
type NormalizedTransaction struct {
	TransactionDate   time.Time
	CustomerState     string
	GrossAmount       decimal.Decimal
	TaxCollected      decimal.Decimal
	ShippingAmount    decimal.Decimal
	IsMarketplaceSale bool
	IsExemptSale      bool
	CustomerID        *string
	OrderID           *string
	MarketplaceName   *string
	OriginalRowNumber *string
}

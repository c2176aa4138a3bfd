package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexusradar/nexusradar-api/internal/types/business"
)

// AnalysisResponse represents an analysis in API responses
type AnalysisResponse struct {
	AnalysisID          uuid.UUID `json:"analysis_id"`
	TenantID            uuid.UUID `json:"tenant_id"`
	ClientName          string    `json:"client_name"`
	Status              string    `json:"status"`
	PeriodStart         string    `json:"period_start"`
	PeriodEnd           string    `json:"period_end"`
	SourceFileKey       *string   `json:"source_file_key,omitempty"`
	ValidationReportKey *string   `json:"validation_report_key,omitempty"`
	ErrorMessage        *string   `json:"error_message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CSVProcessingResult reports the outcome of normalizing an uploaded file
type CSVProcessingResult struct {
	AnalysisID    uuid.UUID                  `json:"analysis_id"`
	Accepted      bool                       `json:"accepted"`
	Message       string                     `json:"message,omitempty"`
	RowsPersisted int                        `json:"rows_persisted"`
	QualityReport business.DataQualityReport `json:"quality_report"`
}

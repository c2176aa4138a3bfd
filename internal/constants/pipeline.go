package constants

// Pipeline stages, one SQS message per stage per analysis.
const (
	StageProcessCSV         = "process_csv"
	StageDetermineNexus     = "determine_nexus"
	StageCalculateLiability = "calculate_liability"
)

// Environment names used by the logger configuration.
const (
	ProdEnvironment = "prod"
	ErrorLevel      = "error"
)

// MinDataQualityPercentage is the batch-level quality gate for CSV imports.
// Batches below this ratio of valid rows are rejected without persisting
// any transactions.
const MinDataQualityPercentage = 80.0

// MaxReportedValidationErrors caps the per-row error list returned to the
// caller and stored in the validation report.
const MaxReportedValidationErrors = 100

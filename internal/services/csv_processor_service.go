package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nexusradar/nexusradar-api/internal/constants"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/types/api/responses"
	"github.com/nexusradar/nexusradar-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// CSVProcessorService normalizes uploaded sales CSVs into transactions
type CSVProcessorService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCSVProcessorService creates a new CSV processor service
func NewCSVProcessorService(queries db.Querier) *CSVProcessorService {
	return &CSVProcessorService{
		queries: queries,
		logger:  logger.Log,
	}
}

// columnAliases maps recognized header spellings to canonical column names.
// Matching is case-insensitive after trimming.
var columnAliases = map[string]string{
	"date":              "transaction_date",
	"transaction date":  "transaction_date",
	"transaction_date":  "transaction_date",
	"order date":        "transaction_date",
	"order_date":        "transaction_date",
	"sale_date":         "transaction_date",
	"invoice_date":      "transaction_date",
	"state":             "customer_state",
	"customer state":    "customer_state",
	"customer_state":    "customer_state",
	"ship to state":     "customer_state",
	"ship_to_state":     "customer_state",
	"destination_state": "customer_state",
	"billing state":     "customer_state",
	"amount":            "gross_amount",
	"total":             "gross_amount",
	"gross amount":      "gross_amount",
	"gross_amount":      "gross_amount",
	"sale amount":       "gross_amount",
	"sale_amount":       "gross_amount",
	"revenue":           "gross_amount",
	"tax":               "tax_collected",
	"tax collected":     "tax_collected",
	"tax_collected":     "tax_collected",
	"sales tax":         "tax_collected",
	"sales_tax":         "tax_collected",
	"tax amount":        "tax_collected",
	"tax_amount":        "tax_collected",
	"shipping":          "shipping_amount",
	"shipping amount":   "shipping_amount",
	"shipping_amount":   "shipping_amount",
	"freight":           "shipping_amount",
	"shipping_cost":     "shipping_amount",
	"order id":          "order_id",
	"order_id":          "order_id",
	"transaction id":    "order_id",
	"transaction_id":    "order_id",
	"invoice number":    "order_id",
	"invoice_number":    "order_id",
	"order_number":      "order_id",
	"customer id":       "customer_id",
	"customer_id":       "customer_id",
	"customer":          "customer_id",
	"customer number":   "customer_id",
	"customer_number":   "customer_id",
	"marketplace":       "marketplace_name",
	"marketplace_name":  "marketplace_name",
	"channel":           "marketplace_name",
	"platform":          "marketplace_name",
	"exempt":            "is_exempt",
	"is_exempt":         "is_exempt",
	"tax exempt":        "is_exempt",
	"tax_exempt":        "is_exempt",
	"exemption":         "is_exempt",
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
}

// ProcessFile parses, validates and persists a client's sales CSV.
// Rows are only persisted when at least 80% of them validate; below that
// the result reports a soft rejection and nothing is stored.
func (s *CSVProcessorService) ProcessFile(ctx context.Context, analysisID uuid.UUID, content []byte) (*responses.CSVProcessingResult, error) {
	s.logger.Info("Processing CSV file",
		zap.String("analysis_id", analysisID.String()),
		zap.Int("size_bytes", len(content)))

	header, rows, err := s.parseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	columns := s.normalizeColumns(header)
	s.logger.Info("Normalized CSV columns", zap.Strings("columns", columns))

	var (
		validRows  []db.CreateTransactionsParams
		rowErrors  []business.RowValidationError
		totalRows  = len(rows)
		validCount int
	)

	for idx, record := range rows {
		// +2 accounts for the header line and 1-based numbering
		rowNumber := idx + 2
		txn, rowErr := s.validateRow(columns, record, rowNumber)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		validCount++
		validRows = append(validRows, db.CreateTransactionsParams{
			AnalysisID:        analysisID,
			TransactionDate:   txn.TransactionDate,
			CustomerState:     txn.CustomerState,
			GrossAmount:       txn.GrossAmount,
			TaxCollected:      txn.TaxCollected,
			ShippingAmount:    txn.ShippingAmount,
			IsMarketplaceSale: txn.IsMarketplaceSale,
			IsExemptSale:      txn.IsExemptSale,
			CustomerID:        txn.CustomerID,
			OrderID:           txn.OrderID,
			MarketplaceName:   txn.MarketplaceName,
			OriginalRowNumber: txn.OriginalRowNumber,
		})
	}

	qualityPercentage := 0.0
	if totalRows > 0 {
		qualityPercentage = float64(validCount) / float64(totalRows) * 100
	}

	report := business.DataQualityReport{
		TotalRows:         totalRows,
		ValidRows:         validCount,
		InvalidRows:       totalRows - validCount,
		QualityPercentage: qualityPercentage,
		ValidationErrors:  capErrors(rowErrors),
	}

	if qualityPercentage < constants.MinDataQualityPercentage {
		s.logger.Warn("CSV rejected below quality minimum",
			zap.String("analysis_id", analysisID.String()),
			zap.Float64("quality_percentage", qualityPercentage))
		return &responses.CSVProcessingResult{
			AnalysisID: analysisID,
			Accepted:   false,
			Message: fmt.Sprintf("Data quality too low: %.1f%% valid rows (minimum %.0f%% required)",
				qualityPercentage, constants.MinDataQualityPercentage),
			QualityReport: report,
		}, nil
	}

	inserted, err := s.queries.CreateTransactions(ctx, validRows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}
	s.logger.Info("Inserted transactions",
		zap.String("analysis_id", analysisID.String()),
		zap.Int64("count", inserted))

	return &responses.CSVProcessingResult{
		AnalysisID:    analysisID,
		Accepted:      true,
		RowsPersisted: int(inserted),
		QualityReport: report,
	}, nil
}

func capErrors(errs []business.RowValidationError) []business.RowValidationError {
	if len(errs) > constants.MaxReportedValidationErrors {
		return errs[:constants.MaxReportedValidationErrors]
	}
	return errs
}

// parseCSV decodes the file bytes to UTF-8 and tokenizes the CSV. Decoding
// never fails: unknown encodings fall back to Latin-1, which accepts any
// byte sequence.
func (s *CSVProcessorService) parseCSV(content []byte) ([]string, [][]string, error) {
	decoded, encodingName := decodeToUTF8(content)
	s.logger.Info("Detected encoding", zap.String("encoding", encodingName))

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

func decodeToUTF8(content []byte) ([]byte, string) {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return content[3:], "utf-8-bom"
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		if out, err := decoder.Bytes(content); err == nil {
			return out, "utf-16le"
		}
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		if out, err := decoder.Bytes(content); err == nil {
			return out, "utf-16be"
		}
	}
	if utf8.Valid(content) {
		return content, "utf-8"
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// Latin-1 decoding accepts all bytes; keep the raw content if the
		// decoder still balks
		return content, "utf-8"
	}
	return out, "latin-1"
}

// normalizeColumns maps raw headers to canonical column names. Unrecognized
// headers keep their lower-cased name with spaces replaced by underscores.
func (s *CSVProcessorService) normalizeColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := columnAliases[key]; ok {
			columns[i] = canonical
			continue
		}
		columns[i] = strings.ReplaceAll(key, " ", "_")
	}
	return columns
}

func (s *CSVProcessorService) validateRow(columns []string, record []string, rowNumber int) (*business.NormalizedTransaction, *business.RowValidationError) {
	values := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(record) {
			values[col] = strings.TrimSpace(record[i])
		}
	}

	var errs []string

	dateRaw, hasDate := values["transaction_date"]
	if !hasDate || dateRaw == "" {
		errs = append(errs, "Missing transaction date")
	}
	transactionDate := parseDate(dateRaw)
	if transactionDate == nil && hasDate {
		errs = append(errs, "Invalid date format")
	}

	stateRaw, hasState := values["customer_state"]
	if !hasState || stateRaw == "" {
		errs = append(errs, "Missing customer state")
	}
	customerState := NormalizeStateCode(stateRaw)
	if customerState == "" && hasState {
		errs = append(errs, "Invalid state code")
	}

	amountRaw, hasAmount := values["gross_amount"]
	if !hasAmount || amountRaw == "" {
		errs = append(errs, "Missing gross amount")
	}
	grossAmount := parseAmount(amountRaw)
	if grossAmount == nil {
		errs = append(errs, "Invalid amount")
	}

	if len(errs) > 0 {
		return nil, &business.RowValidationError{
			RowNumber: rowNumber,
			Errors:    errs,
			Data:      values,
		}
	}

	marketplaceName := optionalString(values["marketplace_name"])
	rowRef := fmt.Sprintf("%d", rowNumber)

	return &business.NormalizedTransaction{
		TransactionDate:   *transactionDate,
		CustomerState:     customerState,
		GrossAmount:       *grossAmount,
		TaxCollected:      amountOrZero(values["tax_collected"]),
		ShippingAmount:    amountOrZero(values["shipping_amount"]),
		IsMarketplaceSale: marketplaceName != nil,
		IsExemptSale:      parseBoolFlag(values["is_exempt"]),
		CustomerID:        optionalString(values["customer_id"]),
		OrderID:           optionalString(values["order_id"]),
		MarketplaceName:   marketplaceName,
		OriginalRowNumber: &rowRef,
	}, nil
}

func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// parseAmount strips currency symbols and thousands separators. Blank values
// parse as 0.00, matching how sparse export columns are treated.
func parseAmount(value string) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		zero := decimal.New(0, -2)
		return &zero
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, "$", ""), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &amount
}

func amountOrZero(value string) decimal.Decimal {
	if amount := parseAmount(value); amount != nil {
		return *amount
	}
	return decimal.New(0, -2)
}

func parseBoolFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

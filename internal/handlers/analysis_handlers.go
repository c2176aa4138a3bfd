package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/nexusradar/nexusradar-api/internal/types/api/requests"
	"github.com/nexusradar/nexusradar-api/internal/types/api/responses"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"

	// Uploads above this size are rejected before reading the body
	maxUploadBytes = 50 << 20
)

// AnalysisHandler handles analysis lifecycle operations
type AnalysisHandler struct {
	common *CommonServices
}

// NewAnalysisHandler creates a new AnalysisHandler instance
func NewAnalysisHandler(common *CommonServices) *AnalysisHandler {
	return &AnalysisHandler{common: common}
}

// CreateAnalysis godoc
// @Summary Create a new analysis
// @Description Register a new nexus analysis for the authenticated tenant
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body requests.CreateAnalysisRequest true "Analysis details"
// @Success 201 {object} responses.AnalysisResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses [post]
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req requests.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid period_start date", err)
		return
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid period_end date", err)
		return
	}
	if periodEnd.Before(periodStart) {
		sendError(c, http.StatusBadRequest, "period_end must not be before period_start", nil)
		return
	}

	analysis, err := h.common.analyses.CreateAnalysis(c.Request.Context(), params.CreateAnalysisParams{
		TenantID:    tenantID,
		ClientName:  req.ClientName,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create analysis", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toAnalysisResponse(analysis))
}

// ListAnalyses godoc
// @Summary List analyses
// @Description List the authenticated tenant's analyses, newest first
// @Tags analyses
// @Produce json
// @Success 200 {array} responses.AnalysisResponse
// @Security ApiKeyAuth
// @Router /analyses [get]
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	analyses, err := h.common.analyses.ListAnalyses(c.Request.Context(), tenantID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list analyses", err)
		return
	}

	items := make([]responses.AnalysisResponse, 0, len(analyses))
	for _, analysis := range analyses {
		items = append(items, toAnalysisResponse(analysis))
	}
	sendList(c, items)
}

// GetAnalysis godoc
// @Summary Get analysis by ID
// @Description Get analysis status and details
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} responses.AnalysisResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	analysis, err := h.common.analyses.GetAnalysis(c.Request.Context(), tenantID, analysisID)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusOK, toAnalysisResponse(analysis))
}

// DeleteAnalysis godoc
// @Summary Delete analysis
// @Description Delete an analysis and all derived data
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id} [delete]
func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	if err := h.common.analyses.DeleteAnalysis(c.Request.Context(), tenantID, analysisID); err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Analysis deleted")
}

// UploadTransactions godoc
// @Summary Upload transaction file
// @Description Upload a CSV of sales transactions and start asynchronous processing
// @Tags analyses
// @Accept multipart/form-data
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Param file formData file true "Transaction CSV"
// @Success 202 {object} responses.AnalysisResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/transactions [post]
func (h *AnalysisHandler) UploadTransactions(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Missing file upload", err)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("File exceeds %dMB limit", maxUploadBytes>>20), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to open upload", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read upload", err)
		return
	}

	analysis, err := h.common.analyses.SubmitFile(c.Request.Context(), tenantID, analysisID, content)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusAccepted, toAnalysisResponse(analysis))
}

// GetValidationReport godoc
// @Summary Get data quality report
// @Description Download the validation report produced while normalizing the upload
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} business.DataQualityReport
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/validation-report [get]
func (h *AnalysisHandler) GetValidationReport(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	report, err := h.common.analyses.GetValidationReport(c.Request.Context(), tenantID, analysisID)
	if err != nil {
		handleDBError(c, err, "Validation report not found")
		return
	}

	c.Data(http.StatusOK, "application/json", report)
}

// GetNexusResults godoc
// @Summary Get nexus determinations
// @Description Get per-state nexus results for a completed analysis
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} responses.NexusSummaryResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/nexus [get]
func (h *AnalysisHandler) GetNexusResults(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	results, err := h.common.analyses.GetNexusResults(c.Request.Context(), tenantID, analysisID)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusOK, toNexusSummary(analysisID, results))
}

// RerunNexus godoc
// @Summary Re-run nexus determination
// @Description Re-evaluate nexus for an analysis synchronously
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} responses.NexusSummaryResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/nexus [post]
func (h *AnalysisHandler) RerunNexus(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	if _, err := h.common.analyses.GetAnalysis(c.Request.Context(), tenantID, analysisID); err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	results, err := h.common.nexus.DetermineNexus(c.Request.Context(), analysisID)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusOK, toNexusSummary(analysisID, results))
}

// GetLiabilityEstimates godoc
// @Summary Get liability estimates
// @Description Get per-state liability estimates for a completed analysis
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} responses.LiabilitySummaryResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/liability [get]
func (h *AnalysisHandler) GetLiabilityEstimates(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	estimates, err := h.common.analyses.GetLiabilityEstimates(c.Request.Context(), tenantID, analysisID)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLiabilitySummary(analysisID, estimates))
}

// EstimateLiability godoc
// @Summary Re-estimate liability
// @Description Re-run liability estimation with custom assumptions
// @Tags analyses
// @Accept json
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Param request body requests.EstimateLiabilityRequest false "Estimation assumptions"
// @Success 200 {object} responses.LiabilitySummaryResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/liability [post]
func (h *AnalysisHandler) EstimateLiability(c *gin.Context) {
	tenantID, analysisID, ok := h.requestScope(c)
	if !ok {
		return
	}

	var req requests.EstimateLiabilityRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	liabilityParams := params.LiabilityParams{
		IncludePenalties:     true,
		CustomLookbackMonths: req.CustomLookbackMonths,
	}
	if req.ExemptionRate != nil {
		rate, err := decimal.NewFromString(*req.ExemptionRate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid exemption rate", err)
			return
		}
		liabilityParams.ExemptionRate = &rate
	}
	if req.IncludePenalties != nil {
		liabilityParams.IncludePenalties = *req.IncludePenalties
	}

	if _, err := h.common.analyses.GetAnalysis(c.Request.Context(), tenantID, analysisID); err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	estimates, err := h.common.liability.CalculateLiability(c.Request.Context(), analysisID, liabilityParams)
	if err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLiabilitySummary(analysisID, estimates))
}

// requestScope resolves the tenant and the analysis_id path parameter
func (h *AnalysisHandler) requestScope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	analysisID, err := uuid.Parse(c.Param("analysis_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid analysis ID format", err)
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, analysisID, true
}

func toAnalysisResponse(analysis db.Analysis) responses.AnalysisResponse {
	return responses.AnalysisResponse{
		AnalysisID:          analysis.AnalysisID,
		TenantID:            analysis.TenantID,
		ClientName:          analysis.ClientName,
		Status:              string(analysis.Status),
		PeriodStart:         analysis.PeriodStart.Format(dateLayout),
		PeriodEnd:           analysis.PeriodEnd.Format(dateLayout),
		SourceFileKey:       analysis.SourceFileKey,
		ValidationReportKey: analysis.ValidationReportKey,
		ErrorMessage:        analysis.ErrorMessage,
		CreatedAt:           analysis.CreatedAt,
		UpdatedAt:           analysis.UpdatedAt,
	}
}

func toNexusResultResponse(result db.NexusResult) responses.NexusResultResponse {
	return responses.NexusResultResponse{
		ResultID:             result.ResultID,
		AnalysisID:           result.AnalysisID,
		StateCode:            result.StateCode,
		NexusStatus:          string(result.NexusStatus),
		NexusEstablishedDate: formatDatePtr(result.NexusEstablishedDate),
		PhysicalNexus:        result.PhysicalNexus,
		EconomicNexus:        result.EconomicNexus,
		TotalSales:           result.TotalSales.StringFixed(2),
		TaxableSales:         result.TaxableSales.StringFixed(2),
		TransactionCount:     result.TransactionCount,
		SalesThreshold:       formatNullDecimal(result.SalesThreshold),
		TransactionThreshold: result.TransactionThreshold,
		ThresholdPercentage:  formatNullDecimal(result.ThresholdPercentage),
		DaysUntilThreshold:   result.DaysUntilThreshold,
		ConfidenceLevel:      string(result.ConfidenceLevel),
		RegistrationDeadline: formatDatePtr(result.RegistrationDeadline),
		Recommendation:       result.Recommendation,
		CalculationNotes:     result.CalculationNotes,
		CreatedAt:            result.CreatedAt,
	}
}

func toNexusSummary(analysisID uuid.UUID, results []db.NexusResult) responses.NexusSummaryResponse {
	summary := responses.NexusSummaryResponse{
		AnalysisID: analysisID,
		Results:    make([]responses.NexusResultResponse, 0, len(results)),
	}
	for _, result := range results {
		summary.StatesAnalyzed++
		switch result.NexusStatus {
		case db.NexusStatusNexusPhysical, db.NexusStatusNexusEconomic:
			summary.StatesWithNexus++
		case db.NexusStatusCloseToThreshold:
			summary.StatesApproach++
		}
		summary.Results = append(summary.Results, toNexusResultResponse(result))
	}
	return summary
}

func toLiabilityEstimateResponse(estimate db.LiabilityEstimate) responses.LiabilityEstimateResponse {
	return responses.LiabilityEstimateResponse{
		EstimateID:             estimate.EstimateID,
		AnalysisID:             estimate.AnalysisID,
		NexusResultID:          estimate.NexusResultID,
		StateCode:              estimate.StateCode,
		PeriodStart:            estimate.PeriodStart.Format(dateLayout),
		PeriodEnd:              estimate.PeriodEnd.Format(dateLayout),
		GrossSales:             estimate.GrossSales.StringFixed(2),
		ExemptSales:            estimate.ExemptSales.StringFixed(2),
		MarketplaceSales:       estimate.MarketplaceSales.StringFixed(2),
		TaxableSales:           estimate.TaxableSales.StringFixed(2),
		StateTaxRate:           estimate.StateTaxRate.String(),
		AvgLocalTaxRate:        estimate.AvgLocalTaxRate.String(),
		EstimatedLiabilityLow:  estimate.EstimatedLiabilityLow.StringFixed(2),
		EstimatedLiabilityMid:  estimate.EstimatedLiabilityMid.StringFixed(2),
		EstimatedLiabilityHigh: estimate.EstimatedLiabilityHigh.StringFixed(2),
		LookbackPeriodMonths:   estimate.LookbackPeriodMonths,
		LookbackStartDate:      formatDatePtr(estimate.LookbackStartDate),
		LookbackEndDate:        formatDatePtr(estimate.LookbackEndDate),
		LookbackLiability:      formatNullDecimal(estimate.LookbackLiability),
		PenaltyAmount:          formatNullDecimal(estimate.PenaltyAmount),
		InterestAmount:         formatNullDecimal(estimate.InterestAmount),
		TotalWithPenalties:     formatNullDecimal(estimate.TotalWithPenalties),
		ExemptionRateAssumed:   estimate.ExemptionRateAssumed.String(),
		RiskLevel:              string(estimate.RiskLevel),
		Recommendation:         estimate.Recommendation,
		CalculationAssumptions: estimate.CalculationAssumptions,
		CreatedAt:              estimate.CreatedAt,
	}
}

func toLiabilitySummary(analysisID uuid.UUID, estimates []db.LiabilityEstimate) responses.LiabilitySummaryResponse {
	var low, mid, high decimal.Decimal
	summary := responses.LiabilitySummaryResponse{
		AnalysisID:     analysisID,
		HighRiskStates: []string{},
		Estimates:      make([]responses.LiabilityEstimateResponse, 0, len(estimates)),
	}
	for _, estimate := range estimates {
		low = low.Add(estimate.EstimatedLiabilityLow)
		mid = mid.Add(estimate.EstimatedLiabilityMid)
		high = high.Add(estimate.EstimatedLiabilityHigh)
		if estimate.RiskLevel == db.RiskLevelHigh {
			summary.HighRiskStates = append(summary.HighRiskStates, estimate.StateCode)
		}
		summary.Estimates = append(summary.Estimates, toLiabilityEstimateResponse(estimate))
	}
	summary.TotalLiabilityLow = low.StringFixed(2)
	summary.TotalLiabilityMid = mid.StringFixed(2)
	summary.TotalLiabilityHigh = high.StringFixed(2)
	return summary
}

func formatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func formatNullDecimal(value decimal.NullDecimal) *string {
	if !value.Valid {
		return nil
	}
	formatted := value.Decimal.String()
	return &formatted
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/nexusradar/nexusradar-api/internal/types/api/requests"
	"github.com/shopspring/decimal"
)

// NexusRuleHandler handles nexus rule and state tax reference data operations
type NexusRuleHandler struct {
	common *CommonServices
}

// NewNexusRuleHandler creates a new NexusRuleHandler instance
func NewNexusRuleHandler(common *CommonServices) *NexusRuleHandler {
	return &NexusRuleHandler{common: common}
}

// ListNexusRules godoc
// @Summary List nexus rules
// @Description List all configured economic nexus rules
// @Tags reference
// @Produce json
// @Success 200 {array} db.NexusRule
// @Security ApiKeyAuth
// @Router /nexus-rules [get]
func (h *NexusRuleHandler) ListNexusRules(c *gin.Context) {
	rules, err := h.common.db.ListNexusRules(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list nexus rules", err)
		return
	}
	sendList(c, rules)
}

// GetNexusRule godoc
// @Summary Get nexus rule by state
// @Description Get the currently effective nexus rule for a state
// @Tags reference
// @Produce json
// @Param state_code path string true "Two-letter state code"
// @Success 200 {object} db.NexusRule
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /nexus-rules/{state_code} [get]
func (h *NexusRuleHandler) GetNexusRule(c *gin.Context) {
	stateCode := services.NormalizeStateCode(c.Param("state_code"))
	if stateCode == "" {
		sendError(c, http.StatusBadRequest, "Invalid state code", nil)
		return
	}

	rule, err := h.common.db.GetActiveNexusRule(c.Request.Context(), db.GetActiveNexusRuleParams{
		StateCode:     stateCode,
		EffectiveDate: time.Now().UTC(),
	})
	if err != nil {
		handleDBError(c, err, "No nexus rule for state")
		return
	}
	sendSuccess(c, http.StatusOK, rule)
}

// UpsertNexusRule godoc
// @Summary Create or update nexus rule
// @Description Create or replace a state's economic nexus rule
// @Tags reference
// @Accept json
// @Produce json
// @Param request body requests.UpsertNexusRuleRequest true "Nexus rule"
// @Success 200 {object} db.NexusRule
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /nexus-rules [put]
func (h *NexusRuleHandler) UpsertNexusRule(c *gin.Context) {
	var req requests.UpsertNexusRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	stateCode := services.NormalizeStateCode(req.StateCode)
	if stateCode == "" {
		sendError(c, http.StatusBadRequest, "Invalid state code", nil)
		return
	}

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid effective_date", err)
		return
	}

	arg := db.UpsertNexusRuleParams{
		StateCode:                stateCode,
		StateName:                req.StateName,
		ThresholdPolicy:          db.ThresholdPolicy(req.ThresholdPolicy),
		MeasurementPeriod:        db.MeasurementPeriod(req.MeasurementPeriod),
		MarketplaceSalesExcluded: req.MarketplaceSalesExcluded,
		EffectiveDate:            effectiveDate,
		DaysToRegister:           req.DaysToRegister,
		RuleDescription:          req.RuleDescription,
		TransactionThreshold:     req.TransactionThreshold,
	}
	if arg.StateName == nil {
		name := services.StateName(stateCode)
		arg.StateName = &name
	}
	if req.SalesThreshold != nil && strings.TrimSpace(*req.SalesThreshold) != "" {
		threshold, err := decimal.NewFromString(*req.SalesThreshold)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid sales threshold", err)
			return
		}
		arg.SalesThreshold = decimal.NullDecimal{Decimal: threshold, Valid: true}
	}

	if !arg.SalesThreshold.Valid && arg.TransactionThreshold == nil {
		sendError(c, http.StatusBadRequest, "At least one threshold is required", nil)
		return
	}

	rule, err := h.common.db.UpsertNexusRule(c.Request.Context(), arg)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to upsert nexus rule", err)
		return
	}
	sendSuccess(c, http.StatusOK, rule)
}

// ListStateTaxConfigs godoc
// @Summary List state tax configurations
// @Description List state and average local tax rates for all states
// @Tags reference
// @Produce json
// @Success 200 {array} db.StateTaxConfig
// @Security ApiKeyAuth
// @Router /state-tax-configs [get]
func (h *NexusRuleHandler) ListStateTaxConfigs(c *gin.Context) {
	configs, err := h.common.db.ListStateTaxConfigs(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list state tax configurations", err)
		return
	}
	sendList(c, configs)
}

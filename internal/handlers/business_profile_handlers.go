package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/nexusradar/nexusradar-api/internal/types/api/requests"
)

// BusinessProfileHandler handles business profile operations
type BusinessProfileHandler struct {
	common *CommonServices
}

// NewBusinessProfileHandler creates a new BusinessProfileHandler instance
func NewBusinessProfileHandler(common *CommonServices) *BusinessProfileHandler {
	return &BusinessProfileHandler{common: common}
}

// BusinessProfileResponse represents a business profile with its locations
type BusinessProfileResponse struct {
	ProfileID           uuid.UUID                  `json:"profile_id"`
	AnalysisID          uuid.UUID                  `json:"analysis_id"`
	LegalName           string                     `json:"legal_name"`
	HasPhysicalPresence bool                       `json:"has_physical_presence"`
	Locations           []PhysicalLocationResponse `json:"locations"`
}

// PhysicalLocationResponse represents one physical presence location
type PhysicalLocationResponse struct {
	LocationID      uuid.UUID `json:"location_id"`
	LocationType    string    `json:"location_type"`
	StateCode       string    `json:"state_code"`
	City            *string   `json:"city,omitempty"`
	EstablishedDate *string   `json:"established_date,omitempty"`
	ClosedDate      *string   `json:"closed_date,omitempty"`
}

// CreateBusinessProfile godoc
// @Summary Attach business profile
// @Description Attach a business profile with physical locations to an analysis
// @Tags analyses
// @Accept json
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Param request body requests.CreateBusinessProfileRequest true "Business profile"
// @Success 201 {object} BusinessProfileResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/business-profile [post]
func (h *BusinessProfileHandler) CreateBusinessProfile(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	analysisID, err := uuid.Parse(c.Param("analysis_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid analysis ID format", err)
		return
	}

	var req requests.CreateBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := h.common.analyses.GetAnalysis(c.Request.Context(), tenantID, analysisID); err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	profileParams := params.BusinessProfileParams{
		AnalysisID:          analysisID,
		LegalName:           req.LegalName,
		HasPhysicalPresence: req.HasPhysicalPresence,
	}
	for _, location := range req.Locations {
		established, err := parseOptionalDate(location.EstablishedDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid established_date", err)
			return
		}
		closed, err := parseOptionalDate(location.ClosedDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid closed_date", err)
			return
		}
		profileParams.Locations = append(profileParams.Locations, params.PhysicalLocationParams{
			LocationType:    location.LocationType,
			StateCode:       location.StateCode,
			City:            location.City,
			EstablishedDate: established,
			ClosedDate:      closed,
		})
	}

	profile, locations, err := h.common.profiles.CreateProfile(c.Request.Context(), profileParams)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to create business profile", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toBusinessProfileResponse(*profile, locations))
}

// GetBusinessProfile godoc
// @Summary Get business profile
// @Description Get the business profile attached to an analysis
// @Tags analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} BusinessProfileResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /analyses/{analysis_id}/business-profile [get]
func (h *BusinessProfileHandler) GetBusinessProfile(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	analysisID, err := uuid.Parse(c.Param("analysis_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid analysis ID format", err)
		return
	}

	if _, err := h.common.analyses.GetAnalysis(c.Request.Context(), tenantID, analysisID); err != nil {
		handleDBError(c, err, "Analysis not found")
		return
	}

	profile, err := h.common.db.GetBusinessProfileByAnalysis(c.Request.Context(), analysisID)
	if err != nil {
		handleDBError(c, err, "Business profile not found")
		return
	}

	locations, err := h.common.db.ListPhysicalLocations(c.Request.Context(), profile.ProfileID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list locations", err)
		return
	}

	sendSuccess(c, http.StatusOK, toBusinessProfileResponse(profile, locations))
}

func toBusinessProfileResponse(profile db.BusinessProfile, locations []db.PhysicalLocation) BusinessProfileResponse {
	resp := BusinessProfileResponse{
		ProfileID:           profile.ProfileID,
		AnalysisID:          profile.AnalysisID,
		LegalName:           profile.LegalName,
		HasPhysicalPresence: profile.HasPhysicalPresence,
		Locations:           make([]PhysicalLocationResponse, 0, len(locations)),
	}
	for _, location := range locations {
		resp.Locations = append(resp.Locations, PhysicalLocationResponse{
			LocationID:      location.LocationID,
			LocationType:    string(location.LocationType),
			StateCode:       location.StateCode,
			City:            location.City,
			EstablishedDate: formatDatePtr(location.EstablishedDate),
			ClosedDate:      formatDatePtr(location.ClosedDate),
		})
	}
	return resp
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"go.uber.org/zap"
)

// BusinessProfileService manages client business profiles and their physical
// presence locations
type BusinessProfileService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewBusinessProfileService creates a new business profile service
func NewBusinessProfileService(queries db.Querier) *BusinessProfileService {
	return &BusinessProfileService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateProfile stores a profile and its physical locations for an analysis
func (s *BusinessProfileService) CreateProfile(ctx context.Context, p params.BusinessProfileParams) (*db.BusinessProfile, []db.PhysicalLocation, error) {
	profile, err := s.queries.CreateBusinessProfile(ctx, db.CreateBusinessProfileParams{
		AnalysisID:          p.AnalysisID,
		LegalName:           p.LegalName,
		HasPhysicalPresence: p.HasPhysicalPresence,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create business profile: %w", err)
	}

	locations := make([]db.PhysicalLocation, 0, len(p.Locations))
	for _, loc := range p.Locations {
		stateCode := NormalizeStateCode(loc.StateCode)
		if stateCode == "" {
			return nil, nil, fmt.Errorf("invalid state code %q", loc.StateCode)
		}
		created, err := s.queries.CreatePhysicalLocation(ctx, db.CreatePhysicalLocationParams{
			ProfileID:       profile.ProfileID,
			LocationType:    db.LocationType(loc.LocationType),
			StateCode:       stateCode,
			City:            loc.City,
			EstablishedDate: loc.EstablishedDate,
			ClosedDate:      loc.ClosedDate,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create physical location: %w", err)
		}
		locations = append(locations, created)
	}

	s.logger.Info("Created business profile",
		zap.String("analysis_id", p.AnalysisID.String()),
		zap.Int("locations", len(locations)))
	return &profile, locations, nil
}

// PhysicalNexusStates returns the sorted state codes where the profile had at
// least one active location on asOf. A location is active when established on
// or before asOf and not yet closed.
func (s *BusinessProfileService) PhysicalNexusStates(profile *db.BusinessProfile, locations []db.PhysicalLocation, asOf time.Time) []string {
	if profile == nil || !profile.HasPhysicalPresence {
		return nil
	}

	seen := make(map[string]bool)
	for _, loc := range locations {
		if loc.EstablishedDate != nil && loc.EstablishedDate.After(asOf) {
			continue
		}
		if loc.ClosedDate != nil && !loc.ClosedDate.After(asOf) {
			continue
		}
		seen[loc.StateCode] = true
	}

	states := make([]string, 0, len(seen))
	for state := range seen {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// EarliestEstablishedDate returns the earliest non-null established date among
// the given state's locations, regardless of whether the location is still
// open.
func (s *BusinessProfileService) EarliestEstablishedDate(locations []db.PhysicalLocation, stateCode string) *time.Time {
	var earliest *time.Time
	for _, loc := range locations {
		if loc.StateCode != stateCode || loc.EstablishedDate == nil {
			continue
		}
		if earliest == nil || loc.EstablishedDate.Before(*earliest) {
			earliest = loc.EstablishedDate
		}
	}
	return earliest
}

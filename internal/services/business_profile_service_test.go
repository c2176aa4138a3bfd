package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func ptrString(s string) *string {
	return &s
}

func TestBusinessProfileService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBusinessProfileService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	profileID := uuid.New()
	established := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		params        params.BusinessProfileParams
		setupMocks    func()
		wantErr       bool
		errorString   string
		wantLocations int
	}{
		{
			name: "profile with normalized location state",
			params: params.BusinessProfileParams{
				AnalysisID:          analysisID,
				LegalName:           "Acme Widgets LLC",
				HasPhysicalPresence: true,
				Locations: []params.PhysicalLocationParams{
					{
						LocationType:    "warehouse",
						StateCode:       "texas",
						City:            ptrString("Austin"),
						EstablishedDate: ptrTime(established),
					},
				},
			},
			setupMocks: func() {
				mockQuerier.EXPECT().
					CreateBusinessProfile(ctx, db.CreateBusinessProfileParams{
						AnalysisID:          analysisID,
						LegalName:           "Acme Widgets LLC",
						HasPhysicalPresence: true,
					}).
					Return(db.BusinessProfile{ProfileID: profileID, AnalysisID: analysisID}, nil)
				mockQuerier.EXPECT().
					CreatePhysicalLocation(ctx, db.CreatePhysicalLocationParams{
						ProfileID:       profileID,
						LocationType:    db.LocationTypeWarehouse,
						StateCode:       "TX",
						City:            ptrString("Austin"),
						EstablishedDate: ptrTime(established),
					}).
					Return(db.PhysicalLocation{ProfileID: profileID, StateCode: "TX"}, nil)
			},
			wantLocations: 1,
		},
		{
			name: "invalid location state rejected",
			params: params.BusinessProfileParams{
				AnalysisID:          analysisID,
				LegalName:           "Acme Widgets LLC",
				HasPhysicalPresence: true,
				Locations: []params.PhysicalLocationParams{
					{LocationType: "office", StateCode: "Atlantis"},
				},
			},
			setupMocks: func() {
				mockQuerier.EXPECT().
					CreateBusinessProfile(ctx, gomock.Any()).
					Return(db.BusinessProfile{ProfileID: profileID}, nil)
			},
			wantErr:     true,
			errorString: `invalid state code "Atlantis"`,
		},
		{
			name: "no physical presence, no locations",
			params: params.BusinessProfileParams{
				AnalysisID: analysisID,
				LegalName:  "Remote Only Inc",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().
					CreateBusinessProfile(ctx, gomock.Any()).
					Return(db.BusinessProfile{ProfileID: profileID}, nil)
			},
			wantLocations: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			profile, locations, err := service.CreateProfile(ctx, tt.params)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, profile)
			assert.Len(t, locations, tt.wantLocations)
		})
	}
}

func TestBusinessProfileService_PhysicalNexusStates(t *testing.T) {
	service := services.NewBusinessProfileService(nil)
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	activeProfile := &db.BusinessProfile{HasPhysicalPresence: true}
	locations := []db.PhysicalLocation{
		{StateCode: "TX", EstablishedDate: ptrTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
		{StateCode: "CA", EstablishedDate: ptrTime(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))},
		// Opens after the analysis period; not yet a presence
		{StateCode: "FL", EstablishedDate: ptrTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))},
		// Closed before the analysis period end
		{StateCode: "NY", EstablishedDate: ptrTime(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)), ClosedDate: ptrTime(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))},
		// Duplicate state collapses
		{StateCode: "TX", EstablishedDate: ptrTime(time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC))},
		// No established date counts as present
		{StateCode: "WA"},
	}

	tests := []struct {
		name    string
		profile *db.BusinessProfile
		want    []string
	}{
		{name: "active locations only, sorted", profile: activeProfile, want: []string{"CA", "TX", "WA"}},
		{name: "nil profile", profile: nil, want: nil},
		{name: "no physical presence flag", profile: &db.BusinessProfile{HasPhysicalPresence: false}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.PhysicalNexusStates(tt.profile, locations, asOf)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessProfileService_EarliestEstablishedDate(t *testing.T) {
	service := services.NewBusinessProfileService(nil)

	locations := []db.PhysicalLocation{
		{StateCode: "TX", EstablishedDate: ptrTime(time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC))},
		{StateCode: "TX", EstablishedDate: ptrTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
		{StateCode: "CA", EstablishedDate: ptrTime(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))},
		{StateCode: "WA"},
	}

	earliest := service.EarliestEstablishedDate(locations, "TX")
	require.NotNil(t, earliest)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), *earliest)

	assert.Nil(t, service.EarliestEstablishedDate(locations, "WA"))
	assert.Nil(t, service.EarliestEstablishedDate(locations, "FL"))
}

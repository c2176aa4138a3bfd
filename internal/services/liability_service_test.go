package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	liabilityPeriodStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	liabilityPeriodEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func texasTaxConfig() db.StateTaxConfig {
	return db.StateTaxConfig{
		StateCode:       "TX",
		StateName:       "Texas",
		StateTaxRate:    decimal.RequireFromString("6.25"),
		AvgLocalTaxRate: decimal.RequireFromString("2.00"),
		HasSalesTax:     true,
	}
}

func expectAnalysisWithNexusStates(mockQuerier *mocks.MockQuerier, ctx context.Context, analysisID uuid.UUID, states []db.NexusResult) {
	mockQuerier.EXPECT().
		GetAnalysis(ctx, analysisID).
		Return(db.Analysis{
			AnalysisID:  analysisID,
			PeriodStart: liabilityPeriodStart,
			PeriodEnd:   liabilityPeriodEnd,
		}, nil)
	mockQuerier.EXPECT().
		ListNexusStates(ctx, analysisID).
		Return(states, nil)
	mockQuerier.EXPECT().
		DeleteAnalysisLiabilityEstimates(ctx, analysisID).
		Return(nil)
}

func captureLiabilityEstimate(mockQuerier *mocks.MockQuerier, ctx context.Context, captured *db.CreateLiabilityEstimateParams) {
	mockQuerier.EXPECT().
		CreateLiabilityEstimate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateLiabilityEstimateParams) (db.LiabilityEstimate, error) {
			*captured = arg
			return db.LiabilityEstimate{
				EstimateID: uuid.New(),
				AnalysisID: arg.AnalysisID,
				StateCode:  arg.StateCode,
				RiskLevel:  arg.RiskLevel,
			}, nil
		})
}

func TestLiabilityService_CalculateLiability_Bands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewLiabilityService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	resultID := uuid.New()

	nexusStates := []db.NexusResult{
		{
			ResultID:        resultID,
			AnalysisID:      analysisID,
			StateCode:       "TX",
			NexusStatus:     db.NexusStatusNexusEconomic,
			ConfidenceLevel: db.ConfidenceLevelMedium,
		},
	}

	expectAnalysisWithNexusStates(mockQuerier, ctx, analysisID, nexusStates)
	mockQuerier.EXPECT().
		GetStateTaxConfig(ctx, "TX").
		Return(texasTaxConfig(), nil)
	mockQuerier.EXPECT().
		ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
			AnalysisID:        analysisID,
			CustomerState:     "TX",
			TransactionDate:   liabilityPeriodStart,
			TransactionDate_2: liabilityPeriodEnd,
		}).
		Return([]db.Transaction{
			{GrossAmount: decimal.NewFromInt(100000), TransactionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	var captured db.CreateLiabilityEstimateParams
	captureLiabilityEstimate(mockQuerier, ctx, &captured)

	estimates, err := service.CalculateLiability(ctx, analysisID, params.LiabilityParams{IncludePenalties: true})
	require.NoError(t, err)
	require.Len(t, estimates, 1)

	assert.Equal(t, resultID, captured.NexusResultID)
	assert.Equal(t, "100000", captured.GrossSales.String())

	// 10% default exemption comes off the top, then the three rate bands apply
	assert.Equal(t, "90000", captured.TaxableSales.String())
	assert.Equal(t, "5625", captured.EstimatedLiabilityLow.String())
	assert.Equal(t, "6525", captured.EstimatedLiabilityMid.String())
	assert.Equal(t, "7425", captured.EstimatedLiabilityHigh.String())
	assert.Equal(t, "0.1", captured.ExemptionRateAssumed.String())

	// No nexus date means no lookback and no penalties
	assert.Equal(t, int32(0), captured.LookbackPeriodMonths)
	assert.False(t, captured.LookbackLiability.Valid)
	assert.False(t, captured.PenaltyAmount.Valid)
	assert.False(t, captured.InterestAmount.Valid)
	assert.False(t, captured.TotalWithPenalties.Valid)

	assert.Equal(t, db.RiskLevelLow, captured.RiskLevel)
	require.NotNil(t, captured.Recommendation)
	assert.Contains(t, *captured.Recommendation, "Register and begin collecting sales tax prospectively.")
	require.NotNil(t, captured.CalculationAssumptions)
	assert.Contains(t, *captured.CalculationAssumptions, "Exemption rate: 10%")
	assert.Contains(t, *captured.CalculationAssumptions, "Mid estimate uses state + 50% avg local")
}

func TestLiabilityService_CalculateLiability_PenaltiesAndLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewLiabilityService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	nexusDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC)

	nexusStates := []db.NexusResult{
		{
			ResultID:             uuid.New(),
			AnalysisID:           analysisID,
			StateCode:            "TX",
			NexusStatus:          db.NexusStatusNexusPhysical,
			ConfidenceLevel:      db.ConfidenceLevelHigh,
			NexusEstablishedDate: &nexusDate,
			RegistrationDeadline: &deadline,
		},
	}

	expectAnalysisWithNexusStates(mockQuerier, ctx, analysisID, nexusStates)
	mockQuerier.EXPECT().
		GetStateTaxConfig(ctx, "TX").
		Return(texasTaxConfig(), nil)

	periodTxns := []db.Transaction{
		{GrossAmount: decimal.NewFromInt(1000000), TransactionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	mockQuerier.EXPECT().
		ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
			AnalysisID:        analysisID,
			CustomerState:     "TX",
			TransactionDate:   liabilityPeriodStart,
			TransactionDate_2: liabilityPeriodEnd,
		}).
		Return(periodTxns, nil)

	// Lookback window ends at the nexus date
	mockQuerier.EXPECT().
		ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
			AnalysisID:        analysisID,
			CustomerState:     "TX",
			TransactionDate:   nexusDate.AddDate(0, -36, 0),
			TransactionDate_2: nexusDate,
		}).
		Return([]db.Transaction{
			{GrossAmount: decimal.NewFromInt(200000), TransactionDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	var captured db.CreateLiabilityEstimateParams
	captureLiabilityEstimate(mockQuerier, ctx, &captured)

	_, err := service.CalculateLiability(ctx, analysisID, params.LiabilityParams{IncludePenalties: true})
	require.NoError(t, err)

	// taxable 900k at the mid rate of 7.25%
	mid := decimal.RequireFromString("65250")
	assert.True(t, captured.EstimatedLiabilityMid.Equal(mid), "mid estimate was %s", captured.EstimatedLiabilityMid)

	assert.Equal(t, int32(36), captured.LookbackPeriodMonths)
	require.NotNil(t, captured.LookbackStartDate)
	assert.Equal(t, nexusDate.AddDate(0, -36, 0), *captured.LookbackStartDate)
	require.NotNil(t, captured.LookbackEndDate)
	assert.Equal(t, nexusDate, *captured.LookbackEndDate)
	require.True(t, captured.LookbackLiability.Valid)
	// 200k lookback sales less 10% exemption at 7.25%
	assert.True(t, captured.LookbackLiability.Decimal.Equal(decimal.RequireFromString("13050")),
		"lookback liability was %s", captured.LookbackLiability.Decimal)

	require.True(t, captured.PenaltyAmount.Valid)
	assert.True(t, captured.PenaltyAmount.Decimal.Equal(mid.Mul(decimal.RequireFromString("0.10"))),
		"penalty was %s", captured.PenaltyAmount.Decimal)

	now := time.Now()
	monthsLate := int64((now.Year()-deadline.Year())*12 + int(now.Month()) - int(deadline.Month()))
	wantInterest := mid.Mul(decimal.RequireFromString("0.01")).Mul(decimal.NewFromInt(monthsLate))
	require.True(t, captured.InterestAmount.Valid)
	assert.True(t, captured.InterestAmount.Decimal.Equal(wantInterest),
		"interest was %s, want %s", captured.InterestAmount.Decimal, wantInterest)

	require.True(t, captured.TotalWithPenalties.Valid)
	assert.True(t, captured.TotalWithPenalties.Decimal.Equal(mid.Add(captured.PenaltyAmount.Decimal).Add(wantInterest)))

	// Physical nexus, penalties accruing, and a large balance all stack up
	assert.Equal(t, db.RiskLevelHigh, captured.RiskLevel)
	require.NotNil(t, captured.Recommendation)
	assert.Contains(t, *captured.Recommendation, "HIGH RISK")
	assert.Contains(t, *captured.Recommendation, "Voluntary Disclosure Agreement")
	assert.Contains(t, *captured.Recommendation, "Physical presence creates strong nexus obligation.")
}

func TestLiabilityService_CalculateLiability_CustomAssumptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewLiabilityService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	nexusDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC)

	nexusStates := []db.NexusResult{
		{
			ResultID:             uuid.New(),
			AnalysisID:           analysisID,
			StateCode:            "TX",
			NexusStatus:          db.NexusStatusNexusEconomic,
			ConfidenceLevel:      db.ConfidenceLevelMedium,
			NexusEstablishedDate: &nexusDate,
			RegistrationDeadline: &deadline,
		},
	}

	expectAnalysisWithNexusStates(mockQuerier, ctx, analysisID, nexusStates)
	mockQuerier.EXPECT().
		GetStateTaxConfig(ctx, "TX").
		Return(texasTaxConfig(), nil)
	mockQuerier.EXPECT().
		ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
			AnalysisID:        analysisID,
			CustomerState:     "TX",
			TransactionDate:   liabilityPeriodStart,
			TransactionDate_2: liabilityPeriodEnd,
		}).
		Return([]db.Transaction{{GrossAmount: decimal.NewFromInt(100000)}}, nil)
	mockQuerier.EXPECT().
		ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
			AnalysisID:        analysisID,
			CustomerState:     "TX",
			TransactionDate:   nexusDate.AddDate(0, -12, 0),
			TransactionDate_2: nexusDate,
		}).
		Return(nil, nil)

	var captured db.CreateLiabilityEstimateParams
	captureLiabilityEstimate(mockQuerier, ctx, &captured)

	zeroExemption := decimal.Zero
	_, err := service.CalculateLiability(ctx, analysisID, params.LiabilityParams{
		ExemptionRate:        &zeroExemption,
		IncludePenalties:     false,
		CustomLookbackMonths: ptrInt32(12),
	})
	require.NoError(t, err)

	// No exemption haircut with a zero rate
	assert.Equal(t, "100000", captured.TaxableSales.String())
	assert.Equal(t, int32(12), captured.LookbackPeriodMonths)

	// Deadline has passed but penalties were opted out of
	assert.False(t, captured.PenaltyAmount.Valid)
	assert.False(t, captured.InterestAmount.Valid)
	assert.False(t, captured.TotalWithPenalties.Valid)
}

func TestLiabilityService_CalculateLiability_SkipsStatesWithoutSalesTax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewLiabilityService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	nexusStates := []db.NexusResult{
		{ResultID: uuid.New(), StateCode: "OR", NexusStatus: db.NexusStatusNexusPhysical},
		{ResultID: uuid.New(), StateCode: "ZZ", NexusStatus: db.NexusStatusNexusEconomic},
	}

	expectAnalysisWithNexusStates(mockQuerier, ctx, analysisID, nexusStates)
	mockQuerier.EXPECT().
		GetStateTaxConfig(ctx, "OR").
		Return(db.StateTaxConfig{StateCode: "OR", HasSalesTax: false}, nil)
	// Unknown state has no config row at all
	mockQuerier.EXPECT().
		GetStateTaxConfig(ctx, "ZZ").
		Return(db.StateTaxConfig{}, pgx.ErrNoRows)

	estimates, err := service.CalculateLiability(ctx, analysisID, params.LiabilityParams{IncludePenalties: true})
	require.NoError(t, err)
	assert.Empty(t, estimates)
}

func TestLiabilityService_CalculateLiability_AnalysisNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewLiabilityService(mockQuerier)
	ctx := context.Background()

	analysisID := uuid.New()
	mockQuerier.EXPECT().
		GetAnalysis(ctx, analysisID).
		Return(db.Analysis{}, pgx.ErrNoRows)

	_, err := service.CalculateLiability(ctx, analysisID, params.LiabilityParams{})
	assert.ErrorIs(t, err, services.ErrAnalysisNotFound)
}

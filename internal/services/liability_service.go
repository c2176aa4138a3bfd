package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Conservative defaults used when a tenant does not override assumptions.
var (
	defaultExemptionRate = decimal.NewFromFloat(0.10)
	defaultPenaltyRate   = decimal.NewFromFloat(0.10)
	monthlyInterestRate  = decimal.NewFromFloat(0.01)
)

const (
	defaultLookbackMonths = 36
	maxLookbackMonths     = 48
)

// LiabilityService estimates sales tax exposure for states with nexus
type LiabilityService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewLiabilityService creates a new liability estimation service
func NewLiabilityService(queries db.Querier) *LiabilityService {
	return &LiabilityService{
		queries: queries,
		logger:  logger.Log,
	}
}

type periodLiability struct {
	grossSales       decimal.Decimal
	exemptSales      decimal.Decimal
	marketplaceSales decimal.Decimal
	taxableSales     decimal.Decimal
	lowEstimate      decimal.Decimal
	midEstimate      decimal.Decimal
	highEstimate     decimal.Decimal
}

// CalculateLiability estimates liability for every state where the analysis
// found physical or economic nexus. Re-runs replace the analysis's prior
// estimates.
func (s *LiabilityService) CalculateLiability(ctx context.Context, analysisID uuid.UUID, p params.LiabilityParams) ([]db.LiabilityEstimate, error) {
	s.logger.Info("Calculating liability", zap.String("analysis_id", analysisID.String()))

	exemptionRate := defaultExemptionRate
	if p.ExemptionRate != nil {
		exemptionRate = *p.ExemptionRate
	}

	analysis, err := s.queries.GetAnalysis(ctx, analysisID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	nexusStates, err := s.queries.ListNexusStates(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nexus states: %w", err)
	}
	s.logger.Info("States with nexus", zap.Int("count", len(nexusStates)))

	// Stage re-runs replace prior estimates
	if err := s.queries.DeleteAnalysisLiabilityEstimates(ctx, analysisID); err != nil {
		return nil, fmt.Errorf("failed to clear prior liability estimates: %w", err)
	}

	estimates := make([]db.LiabilityEstimate, 0, len(nexusStates))
	today := time.Now()

	for _, nexusResult := range nexusStates {
		state := nexusResult.StateCode

		taxConfig, err := s.queries.GetStateTaxConfig(ctx, state)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				s.logger.Warn("No tax config for state, skipping", zap.String("state", state))
				continue
			}
			return nil, fmt.Errorf("failed to get tax config for %s: %w", state, err)
		}
		if !taxConfig.HasSalesTax {
			s.logger.Warn("State has no sales tax, skipping", zap.String("state", state))
			continue
		}

		period, err := s.periodLiability(ctx, analysisID, state, taxConfig, analysis.PeriodStart, analysis.PeriodEnd, exemptionRate)
		if err != nil {
			return nil, err
		}

		lookbackMonths := s.lookbackMonths(nexusResult.NexusEstablishedDate, p.CustomLookbackMonths, today)

		var (
			lookbackStart     *time.Time
			lookbackEnd       *time.Time
			lookbackLiability decimal.NullDecimal
		)
		if nexusResult.NexusEstablishedDate != nil && lookbackMonths > 0 {
			start := nexusResult.NexusEstablishedDate.AddDate(0, -int(lookbackMonths), 0)
			end := *nexusResult.NexusEstablishedDate
			lookbackStart, lookbackEnd = &start, &end

			lookback, err := s.periodLiability(ctx, analysisID, state, taxConfig, start, end, exemptionRate)
			if err != nil {
				return nil, err
			}
			lookbackLiability = decimal.NewNullDecimal(lookback.midEstimate)
		}

		var (
			penaltyAmount      decimal.NullDecimal
			interestAmount     decimal.NullDecimal
			totalWithPenalties decimal.NullDecimal
		)
		if p.IncludePenalties && nexusResult.RegistrationDeadline != nil && today.After(*nexusResult.RegistrationDeadline) {
			penalty, interest := calculatePenalties(period.midEstimate, *nexusResult.RegistrationDeadline, today)
			penaltyAmount = decimal.NewNullDecimal(penalty)
			interestAmount = decimal.NewNullDecimal(interest)
			totalWithPenalties = decimal.NewNullDecimal(period.midEstimate.Add(penalty).Add(interest))
		}

		riskLevel := assessRisk(period.midEstimate, nexusResult.NexusStatus, nexusResult.ConfidenceLevel, penaltyAmount.Valid)
		recommendation := liabilityRecommendation(riskLevel, period.midEstimate, penaltyAmount, nexusResult.NexusStatus)
		assumptions := buildAssumptionsNote(exemptionRate, taxConfig, lookbackMonths)

		estimate, err := s.queries.CreateLiabilityEstimate(ctx, db.CreateLiabilityEstimateParams{
			AnalysisID:             analysisID,
			NexusResultID:          nexusResult.ResultID,
			StateCode:              state,
			PeriodStart:            analysis.PeriodStart,
			PeriodEnd:              analysis.PeriodEnd,
			GrossSales:             period.grossSales,
			ExemptSales:            period.exemptSales,
			MarketplaceSales:       period.marketplaceSales,
			TaxableSales:           period.taxableSales,
			StateTaxRate:           taxConfig.StateTaxRate,
			AvgLocalTaxRate:        taxConfig.AvgLocalTaxRate,
			EstimatedLiabilityLow:  period.lowEstimate,
			EstimatedLiabilityMid:  period.midEstimate,
			EstimatedLiabilityHigh: period.highEstimate,
			LookbackPeriodMonths:   lookbackMonths,
			LookbackStartDate:      lookbackStart,
			LookbackEndDate:        lookbackEnd,
			LookbackLiability:      lookbackLiability,
			PenaltyAmount:          penaltyAmount,
			InterestAmount:         interestAmount,
			TotalWithPenalties:     totalWithPenalties,
			ExemptionRateAssumed:   exemptionRate,
			RiskLevel:              riskLevel,
			Recommendation:         &recommendation,
			CalculationAssumptions: &assumptions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store liability estimate for %s: %w", state, err)
		}
		estimates = append(estimates, estimate)
	}

	s.logger.Info("Liability calculation complete",
		zap.String("analysis_id", analysisID.String()),
		zap.Int("states_processed", len(estimates)))
	return estimates, nil
}

// periodLiability computes the taxable base and the three liability bands for
// one state over one period. Marketplace sales (facilitator collects) and
// explicitly exempt sales come off the top; the exemption rate then shaves
// off assumed unidentified exemptions such as resale certificates.
func (s *LiabilityService) periodLiability(ctx context.Context, analysisID uuid.UUID, state string, taxConfig db.StateTaxConfig, periodStart, periodEnd time.Time, exemptionRate decimal.Decimal) (periodLiability, error) {
	transactions, err := s.queries.ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
		AnalysisID:        analysisID,
		CustomerState:     state,
		TransactionDate:   periodStart,
		TransactionDate_2: periodEnd,
	})
	if err != nil {
		return periodLiability{}, fmt.Errorf("failed to list transactions for %s: %w", state, err)
	}

	result := periodLiability{
		grossSales:       decimal.Zero,
		exemptSales:      decimal.Zero,
		marketplaceSales: decimal.Zero,
	}
	for _, txn := range transactions {
		result.grossSales = result.grossSales.Add(txn.GrossAmount)
		if txn.IsExemptSale {
			result.exemptSales = result.exemptSales.Add(txn.GrossAmount)
		}
		if txn.IsMarketplaceSale {
			result.marketplaceSales = result.marketplaceSales.Add(txn.GrossAmount)
		}
	}

	potentiallyTaxable := result.grossSales.Sub(result.marketplaceSales).Sub(result.exemptSales)
	taxable := potentiallyTaxable.Sub(potentiallyTaxable.Mul(exemptionRate))
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	result.taxableSales = taxable

	hundred := decimal.NewFromInt(100)
	stateRate := taxConfig.StateTaxRate.Div(hundred)
	localRate := taxConfig.AvgLocalTaxRate.Div(hundred)

	result.lowEstimate = taxable.Mul(stateRate)
	result.midEstimate = taxable.Mul(stateRate.Add(localRate.Mul(decimal.NewFromFloat(0.5))))
	result.highEstimate = taxable.Mul(stateRate.Add(localRate))
	return result, nil
}

// lookbackMonths picks the exposure window: time since nexus, capped at the
// common 3-year statute with a hard 4-year maximum.
func (s *LiabilityService) lookbackMonths(nexusDate *time.Time, override *int32, today time.Time) int32 {
	if override != nil {
		return *override
	}
	if nexusDate == nil {
		return 0
	}

	months := int32((today.Year()-nexusDate.Year())*12 + int(today.Month()) - int(nexusDate.Month()))
	if months > defaultLookbackMonths {
		months = defaultLookbackMonths
	}
	if months > maxLookbackMonths {
		months = maxLookbackMonths
	}
	if months < 0 {
		months = 0
	}
	return months
}

func calculatePenalties(liability decimal.Decimal, registrationDeadline, currentDate time.Time) (decimal.Decimal, decimal.Decimal) {
	if !currentDate.After(registrationDeadline) {
		return decimal.Zero, decimal.Zero
	}

	penalty := liability.Mul(defaultPenaltyRate)

	monthsLate := (currentDate.Year()-registrationDeadline.Year())*12 +
		int(currentDate.Month()) - int(registrationDeadline.Month())
	interest := liability.Mul(monthlyInterestRate).Mul(decimal.NewFromInt(int64(monthsLate)))

	return penalty, interest
}

func assessRisk(liability decimal.Decimal, nexusStatus db.NexusStatus, confidence db.ConfidenceLevel, hasPenalties bool) db.RiskLevel {
	riskFactors := 0

	if nexusStatus == db.NexusStatusNexusPhysical {
		riskFactors += 2
	}

	switch {
	case liability.GreaterThan(decimal.NewFromInt(50000)):
		riskFactors += 2
	case liability.GreaterThan(decimal.NewFromInt(10000)):
		riskFactors++
	}

	if hasPenalties {
		riskFactors += 3
	}

	if confidence == db.ConfidenceLevelLow {
		riskFactors--
	}

	switch {
	case riskFactors >= 5:
		return db.RiskLevelHigh
	case riskFactors >= 3:
		return db.RiskLevelMedium
	default:
		return db.RiskLevelLow
	}
}

func liabilityRecommendation(riskLevel db.RiskLevel, liability decimal.Decimal, penalty decimal.NullDecimal, nexusStatus db.NexusStatus) string {
	var recommendations []string

	switch riskLevel {
	case db.RiskLevelHigh:
		recommendations = append(recommendations, "HIGH RISK: Consult with sales tax professional immediately.")
		if penalty.Valid {
			recommendations = append(recommendations, "Penalties are accruing. Consider Voluntary Disclosure Agreement (VDA).")
		}
	case db.RiskLevelMedium:
		recommendations = append(recommendations, "MEDIUM RISK: Review with tax advisor and consider filing options.")
	}

	switch {
	case liability.GreaterThan(decimal.NewFromInt(50000)):
		recommendations = append(recommendations, fmt.Sprintf("Significant liability ($%s). Priority state for compliance.", formatAmount(liability)))
	case liability.GreaterThan(decimal.NewFromInt(10000)):
		recommendations = append(recommendations, fmt.Sprintf("Moderate liability ($%s). Plan for registration and filing.", formatAmount(liability)))
	}

	if nexusStatus == db.NexusStatusNexusPhysical {
		recommendations = append(recommendations, "Physical presence creates strong nexus obligation.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Register and begin collecting sales tax prospectively.")
	}

	return strings.Join(recommendations, " ")
}

func buildAssumptionsNote(exemptionRate decimal.Decimal, taxConfig db.StateTaxConfig, lookbackMonths int32) string {
	notes := []string{
		fmt.Sprintf("Exemption rate: %s%% assumed for unknown exemptions", exemptionRate.Mul(decimal.NewFromInt(100)).Round(0)),
		fmt.Sprintf("State rate: %s%%", taxConfig.StateTaxRate),
	}

	if taxConfig.AvgLocalTaxRate.IsPositive() {
		notes = append(notes,
			fmt.Sprintf("Avg local rate: %s%%", taxConfig.AvgLocalTaxRate),
			"Low estimate uses state rate only",
			"Mid estimate uses state + 50% avg local",
			"High estimate uses state + full avg local")
	} else {
		notes = append(notes, "No local sales tax in this state")
	}

	if lookbackMonths > 0 {
		notes = append(notes, fmt.Sprintf("Lookback period: %d months (%.1f years)", lookbackMonths, float64(lookbackMonths)/12))
	}

	notes = append(notes,
		"Estimates are approximations only - actual liability may vary",
		"Consult with tax professional for accurate assessment")

	return strings.Join(notes, "; ")
}

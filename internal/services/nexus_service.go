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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// thresholdWarningRatio is the fraction of a threshold at which a state is
// flagged as approaching nexus.
const thresholdWarningRatio = 0.80

// NexusService determines per-state sales tax nexus for an analysis
type NexusService struct {
	queries  db.Querier
	profiles *BusinessProfileService
	logger   *zap.Logger
}

// NewNexusService creates a new nexus determination service
func NewNexusService(queries db.Querier) *NexusService {
	return &NexusService{
		queries:  queries,
		profiles: NewBusinessProfileService(queries),
		logger:   logger.Log,
	}
}

// economicResult carries the outcome of the economic nexus evaluation for one
// state.
type economicResult struct {
	hasNexus            bool
	nexusDate           *time.Time
	totalSales          decimal.Decimal
	taxableSales        decimal.Decimal
	transactionCount    int
	marketplaceSales    decimal.Decimal
	closeToThreshold    bool
	thresholdPercentage decimal.NullDecimal
	daysUntilThreshold  *int32
	notes               *string
}

// DetermineNexus evaluates every state with an active economic nexus rule and
// persists one NexusResult per state. Re-runs replace the analysis's prior
// results.
func (s *NexusService) DetermineNexus(ctx context.Context, analysisID uuid.UUID) ([]db.NexusResult, error) {
	s.logger.Info("Starting nexus determination", zap.String("analysis_id", analysisID.String()))

	analysis, err := s.queries.GetAnalysis(ctx, analysisID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var (
		profile   *db.BusinessProfile
		locations []db.PhysicalLocation
	)
	if p, err := s.queries.GetBusinessProfileByAnalysis(ctx, analysisID); err == nil {
		profile = &p
		locations, err = s.queries.ListPhysicalLocations(ctx, p.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("failed to list physical locations: %w", err)
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}

	physicalStates := make(map[string]bool)
	for _, state := range s.profiles.PhysicalNexusStates(profile, locations, analysis.PeriodEnd) {
		physicalStates[state] = true
	}
	if len(physicalStates) > 0 {
		s.logger.Info("Physical nexus states found", zap.Int("count", len(physicalStates)))
	}

	rules, err := s.queries.ListActiveNexusRules(ctx, analysis.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list nexus rules: %w", err)
	}

	// Stage re-runs replace prior results
	if err := s.queries.DeleteAnalysisNexusResults(ctx, analysisID); err != nil {
		return nil, fmt.Errorf("failed to clear prior nexus results: %w", err)
	}

	results := make([]db.NexusResult, 0, len(rules))
	for _, rule := range rules {
		state := rule.StateCode
		hasPhysical := physicalStates[state]

		economic, err := s.checkEconomicNexus(ctx, analysisID, rule, analysis.PeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", state, err)
		}

		var (
			status    db.NexusStatus
			nexusDate *time.Time
		)
		switch {
		case hasPhysical:
			status = db.NexusStatusNexusPhysical
			nexusDate = s.profiles.EarliestEstablishedDate(locations, state)
		case economic.hasNexus:
			status = db.NexusStatusNexusEconomic
			nexusDate = economic.nexusDate
		case economic.closeToThreshold:
			status = db.NexusStatusCloseToThreshold
		default:
			status = db.NexusStatusNoNexus
		}

		confidence := s.confidenceLevel(hasPhysical, economic, rule)

		var registrationDeadline *time.Time
		if nexusDate != nil && (status == db.NexusStatusNexusPhysical || status == db.NexusStatusNexusEconomic) {
			days := int32(60)
			if rule.DaysToRegister != nil {
				days = *rule.DaysToRegister
			}
			deadline := nexusDate.AddDate(0, 0, int(days))
			registrationDeadline = &deadline
		}

		recommendation := s.recommendation(status, economic, registrationDeadline)

		result, err := s.queries.CreateNexusResult(ctx, db.CreateNexusResultParams{
			AnalysisID:           analysisID,
			StateCode:            state,
			NexusStatus:          status,
			NexusEstablishedDate: nexusDate,
			PhysicalNexus:        hasPhysical,
			EconomicNexus:        economic.hasNexus,
			TotalSales:           economic.totalSales,
			TaxableSales:         economic.taxableSales,
			TransactionCount:     int32(economic.transactionCount),
			SalesThreshold:       rule.SalesThreshold,
			TransactionThreshold: rule.TransactionThreshold,
			ThresholdPercentage:  economic.thresholdPercentage,
			DaysUntilThreshold:   economic.daysUntilThreshold,
			ConfidenceLevel:      confidence,
			RegistrationDeadline: registrationDeadline,
			Recommendation:       &recommendation,
			CalculationNotes:     economic.notes,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store nexus result for %s: %w", state, err)
		}
		results = append(results, result)
	}

	s.logger.Info("Nexus determination complete",
		zap.String("analysis_id", analysisID.String()),
		zap.Int("states_analyzed", len(results)))
	return results, nil
}

func (s *NexusService) checkEconomicNexus(ctx context.Context, analysisID uuid.UUID, rule db.NexusRule, periodEnd time.Time) (economicResult, error) {
	window := measurementWindow(rule.MeasurementPeriod, periodEnd)

	transactions, err := s.queries.ListStateTransactionsInPeriod(ctx, db.ListStateTransactionsInPeriodParams{
		AnalysisID:        analysisID,
		CustomerState:     rule.StateCode,
		TransactionDate:   window.Start,
		TransactionDate_2: window.End,
	})
	if err != nil {
		return economicResult{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := economicResult{
		totalSales:       decimal.Zero,
		taxableSales:     decimal.Zero,
		marketplaceSales: decimal.Zero,
	}

	for _, txn := range transactions {
		result.totalSales = result.totalSales.Add(txn.GrossAmount)
		result.transactionCount++

		if txn.IsMarketplaceSale && rule.MarketplaceSalesExcluded {
			result.marketplaceSales = result.marketplaceSales.Add(txn.GrossAmount)
		} else if !txn.IsExemptSale {
			result.taxableSales = result.taxableSales.Add(txn.GrossAmount)
		}
	}

	var reasons []string
	salesMet := rule.SalesThreshold.Valid && result.taxableSales.GreaterThanOrEqual(rule.SalesThreshold.Decimal)
	txnsMet := rule.TransactionThreshold != nil && result.transactionCount >= int(*rule.TransactionThreshold)

	switch rule.ThresholdPolicy {
	case db.ThresholdPolicySalesOnly:
		if salesMet {
			result.hasNexus = true
			reasons = append(reasons, salesReason(result.taxableSales, rule.SalesThreshold.Decimal))
		}
	case db.ThresholdPolicyTransactionsOnly:
		if txnsMet {
			result.hasNexus = true
			reasons = append(reasons, txnReason(result.transactionCount, *rule.TransactionThreshold))
		}
	case db.ThresholdPolicyEither:
		if salesMet || txnsMet {
			result.hasNexus = true
			if salesMet {
				reasons = append(reasons, salesReason(result.taxableSales, rule.SalesThreshold.Decimal))
			}
			if txnsMet {
				reasons = append(reasons, txnReason(result.transactionCount, *rule.TransactionThreshold))
			}
		}
	case db.ThresholdPolicyBoth:
		if salesMet && txnsMet {
			result.hasNexus = true
			reasons = append(reasons, fmt.Sprintf("%s AND %s",
				salesReason(result.taxableSales, rule.SalesThreshold.Decimal),
				txnReason(result.transactionCount, *rule.TransactionThreshold)))
		}
	}

	var notes []string
	if result.marketplaceSales.IsPositive() {
		notes = append(notes, fmt.Sprintf("Excluded $%s in marketplace facilitator sales", formatAmount(result.marketplaceSales)))
	}
	if len(reasons) > 0 {
		notes = append(notes, strings.Join(reasons, "; "))
	}
	if len(notes) > 0 {
		joined := strings.Join(notes, "; ")
		result.notes = &joined
	}

	if result.hasNexus {
		nexusDate, err := s.economicNexusDate(ctx, analysisID, rule)
		if err != nil {
			return economicResult{}, err
		}
		result.nexusDate = nexusDate
	}

	s.checkCloseToThreshold(&result, rule, transactions)
	return result, nil
}

// measurementWindow computes the date range thresholds are measured over.
// Unknown periods fall back to a rolling 12 months.
func measurementWindow(period db.MeasurementPeriod, reference time.Time) struct{ Start, End time.Time } {
	switch period {
	case db.MeasurementPeriodCalendarYear:
		return struct{ Start, End time.Time }{
			Start: time.Date(reference.Year(), 1, 1, 0, 0, 0, 0, time.UTC),
			End:   reference,
		}
	case db.MeasurementPeriodPreviousCalendarYear:
		return struct{ Start, End time.Time }{
			Start: time.Date(reference.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(reference.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	default:
		return struct{ Start, End time.Time }{
			Start: reference.AddDate(0, -12, 1),
			End:   reference,
		}
	}
}

// economicNexusDate replays the state's full transaction history in order and
// returns the date of the first transaction that crossed the threshold.
func (s *NexusService) economicNexusDate(ctx context.Context, analysisID uuid.UUID, rule db.NexusRule) (*time.Time, error) {
	transactions, err := s.queries.ListStateTransactions(ctx, db.ListStateTransactionsParams{
		AnalysisID:    analysisID,
		CustomerState: rule.StateCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list state transactions: %w", err)
	}

	runningSales := decimal.Zero
	runningCount := 0

	for _, txn := range transactions {
		if !txn.IsExemptSale && !(txn.IsMarketplaceSale && rule.MarketplaceSalesExcluded) {
			runningSales = runningSales.Add(txn.GrossAmount)
		}
		runningCount++

		salesMet := rule.SalesThreshold.Valid && runningSales.GreaterThanOrEqual(rule.SalesThreshold.Decimal)
		txnsMet := rule.TransactionThreshold != nil && runningCount >= int(*rule.TransactionThreshold)

		crossed := false
		switch rule.ThresholdPolicy {
		case db.ThresholdPolicySalesOnly:
			crossed = salesMet
		case db.ThresholdPolicyTransactionsOnly:
			crossed = txnsMet
		case db.ThresholdPolicyEither:
			crossed = salesMet || txnsMet
		case db.ThresholdPolicyBoth:
			crossed = salesMet && txnsMet
		}

		if crossed {
			d := txn.TransactionDate
			return &d, nil
		}
	}
	return nil, nil
}

// checkCloseToThreshold flags states at 80-100% of a configured threshold.
// The reported percentage prefers the sales axis; the transaction axis only
// fills in when no sales percentage was computed.
func (s *NexusService) checkCloseToThreshold(result *economicResult, rule db.NexusRule, transactions []db.Transaction) {
	salesAxis := rule.ThresholdPolicy == db.ThresholdPolicySalesOnly ||
		rule.ThresholdPolicy == db.ThresholdPolicyEither ||
		rule.ThresholdPolicy == db.ThresholdPolicyBoth
	txnAxis := rule.ThresholdPolicy == db.ThresholdPolicyTransactionsOnly ||
		rule.ThresholdPolicy == db.ThresholdPolicyEither ||
		rule.ThresholdPolicy == db.ThresholdPolicyBoth

	if salesAxis && rule.SalesThreshold.Valid && rule.SalesThreshold.Decimal.IsPositive() {
		ratio := result.taxableSales.Div(rule.SalesThreshold.Decimal)
		result.thresholdPercentage = decimal.NewNullDecimal(ratio.Mul(decimal.NewFromInt(100)))

		ratioF, _ := ratio.Float64()
		if ratioF >= thresholdWarningRatio && ratioF < 1.0 {
			result.closeToThreshold = true
			result.daysUntilThreshold = estimateDaysUntilThreshold(result.taxableSales, rule.SalesThreshold.Decimal, transactions)
		}
	}

	if txnAxis && rule.TransactionThreshold != nil && *rule.TransactionThreshold > 0 {
		ratio := float64(result.transactionCount) / float64(*rule.TransactionThreshold)
		if !result.thresholdPercentage.Valid {
			result.thresholdPercentage = decimal.NewNullDecimal(decimal.NewFromFloat(ratio * 100))
		}
		if ratio >= thresholdWarningRatio && ratio < 1.0 {
			result.closeToThreshold = true
		}
	}
}

// estimateDaysUntilThreshold projects when the sales threshold will be crossed
// from the daily velocity of the most recent 30 transactions. Returns nil when
// there is not enough signal to project from.
func estimateDaysUntilThreshold(currentSales, threshold decimal.Decimal, transactions []db.Transaction) *int32 {
	if len(transactions) < 2 {
		return nil
	}

	recent := transactions
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}

	dateRange := int(recent[len(recent)-1].TransactionDate.Sub(recent[0].TransactionDate).Hours() / 24)
	if dateRange == 0 {
		return nil
	}

	recentSales := decimal.Zero
	for _, txn := range recent {
		if !txn.IsExemptSale {
			recentSales = recentSales.Add(txn.GrossAmount)
		}
	}

	dailyRate := recentSales.Div(decimal.NewFromInt(int64(dateRange)))
	if !dailyRate.IsPositive() {
		return nil
	}

	days := int32(threshold.Sub(currentSales).Div(dailyRate).IntPart())
	if days < 0 {
		days = 0
	}
	return &days
}

func (s *NexusService) confidenceLevel(hasPhysical bool, economic economicResult, rule db.NexusRule) db.ConfidenceLevel {
	if hasPhysical {
		return db.ConfidenceLevelHigh
	}

	if economic.hasNexus {
		if rule.SalesThreshold.Valid && economic.taxableSales.IsPositive() {
			wellOver := rule.SalesThreshold.Decimal.Mul(decimal.NewFromFloat(1.5))
			if economic.taxableSales.GreaterThanOrEqual(wellOver) {
				return db.ConfidenceLevelHigh
			}
		}
		return db.ConfidenceLevelMedium
	}

	if economic.closeToThreshold {
		return db.ConfidenceLevelMedium
	}

	// Little data makes a no-nexus call weaker
	if economic.transactionCount < 10 {
		return db.ConfidenceLevelLow
	}
	return db.ConfidenceLevelHigh
}

func (s *NexusService) recommendation(status db.NexusStatus, economic economicResult, registrationDeadline *time.Time) string {
	today := time.Now()

	switch status {
	case db.NexusStatusNexusPhysical:
		if registrationDeadline != nil && registrationDeadline.Before(today) {
			return "URGENT: Physical nexus established. Registration deadline has passed. Consult tax advisor immediately."
		}
		if registrationDeadline != nil {
			return fmt.Sprintf("Physical nexus established. Register for sales tax permit by %s.", registrationDeadline.Format("2006-01-02"))
		}
		return "Physical nexus established. Register for sales tax permit as soon as possible."

	case db.NexusStatusNexusEconomic:
		if registrationDeadline != nil && registrationDeadline.Before(today) {
			return "URGENT: Economic nexus threshold exceeded. Registration deadline has passed. Consult tax advisor immediately."
		}
		if registrationDeadline != nil {
			return fmt.Sprintf("Economic nexus threshold exceeded. Register by %s.", registrationDeadline.Format("2006-01-02"))
		}
		return "Economic nexus threshold exceeded. Register for sales tax permit."

	case db.NexusStatusCloseToThreshold:
		pct := decimal.Zero
		if economic.thresholdPercentage.Valid {
			pct = economic.thresholdPercentage.Decimal
		}
		rec := fmt.Sprintf("Approaching threshold (%s%% of threshold). Monitor sales closely.", pct.Round(0))
		if economic.daysUntilThreshold != nil && *economic.daysUntilThreshold > 0 {
			rec += fmt.Sprintf(" Estimated %d days until threshold reached.", *economic.daysUntilThreshold)
		}
		return rec

	default:
		return "No nexus obligation at this time. Continue monitoring sales activity."
	}
}

func salesReason(taxable, threshold decimal.Decimal) string {
	return fmt.Sprintf("Sales $%s >= $%s", formatAmount(taxable), formatAmount(threshold))
}

func txnReason(count int, threshold int32) string {
	return fmt.Sprintf("%d transactions >= %d", count, threshold)
}

// formatAmount renders a decimal with thousands separators and two decimal
// places, e.g. 1234567.8 -> "1,234,567.80".
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

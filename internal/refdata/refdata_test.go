package refdata

import (
	"context"
	"testing"

	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

// States with no statewide sales tax have no economic nexus rule.
var noSalesTaxStates = map[string]bool{"DE": true, "MT": true, "NH": true, "OR": true}

func TestNexusRulesCoverage(t *testing.T) {
	assert.Len(t, NexusRules, 47)

	seen := make(map[string]bool)
	for _, rule := range NexusRules {
		assert.False(t, seen[rule.state], "duplicate rule for %s", rule.state)
		seen[rule.state] = true

		assert.NotEmpty(t, services.StateName(rule.state), "unknown state code %s", rule.state)
		assert.False(t, noSalesTaxStates[rule.state], "%s should not have a nexus rule", rule.state)
		assert.True(t, rule.sales > 0 || rule.txns > 0, "%s has no threshold leg", rule.state)
		assert.NotPanics(t, func() { mustDate(rule.effective) }, "%s has a bad effective date", rule.state)
		assert.Positive(t, rule.days, "%s has no registration window", rule.state)
	}
}

func TestNexusRuleToParams(t *testing.T) {
	byState := make(map[string]nexusRuleSeed, len(NexusRules))
	for _, rule := range NexusRules {
		byState[rule.state] = rule
	}

	// Sales-only state leaves the transaction leg unset
	ca := byState["CA"].toParams("California")
	assert.Equal(t, "CA", ca.StateCode)
	require.True(t, ca.SalesThreshold.Valid)
	assert.Equal(t, "500000", ca.SalesThreshold.Decimal.String())
	assert.Nil(t, ca.TransactionThreshold)
	assert.Equal(t, db.ThresholdPolicySalesOnly, ca.ThresholdPolicy)
	assert.Equal(t, db.MeasurementPeriodPreviousCalendarYear, ca.MeasurementPeriod)
	assert.True(t, ca.MarketplaceSalesExcluded)
	require.NotNil(t, ca.DaysToRegister)
	assert.Equal(t, int32(90), *ca.DaysToRegister)
	assert.Equal(t, "2019-04-01", ca.EffectiveDate.Format("2006-01-02"))

	// Either-policy state carries both legs
	ak := byState["AK"].toParams("Alaska")
	require.True(t, ak.SalesThreshold.Valid)
	assert.Equal(t, "100000", ak.SalesThreshold.Decimal.String())
	require.NotNil(t, ak.TransactionThreshold)
	assert.Equal(t, int32(200), *ak.TransactionThreshold)
	assert.Equal(t, db.ThresholdPolicyEither, ak.ThresholdPolicy)

	// New York is the outlier requiring both legs at higher counts
	ny := byState["NY"].toParams("New York")
	assert.Equal(t, db.ThresholdPolicyBoth, ny.ThresholdPolicy)
	assert.Equal(t, "500000", ny.SalesThreshold.Decimal.String())
	require.NotNil(t, ny.TransactionThreshold)
	assert.Equal(t, int32(100), *ny.TransactionThreshold)
}

func TestStateTaxConfigsCoverage(t *testing.T) {
	assert.Len(t, StateTaxConfigs, 51)

	seen := make(map[string]bool)
	for _, config := range StateTaxConfigs {
		assert.False(t, seen[config.state], "duplicate config for %s", config.state)
		seen[config.state] = true

		assert.Equal(t, config.name, services.StateName(config.state))

		p := config.toParams()
		assert.Equal(t, int32(36), p.DefaultLookbackMonths)
		if noSalesTaxStates[config.state] {
			assert.False(t, p.HasSalesTax)
			assert.True(t, p.StateTaxRate.IsZero(), "%s should have a zero state rate", config.state)
		}
		if p.HasSalesTax {
			assert.True(t, p.StateTaxRate.IsPositive(), "%s should have a positive state rate", config.state)
		}
	}

	// Alaska has local-option taxes without a statewide rate
	ak := StateTaxConfigs[1].toParams()
	assert.Equal(t, "AK", ak.StateCode)
	assert.False(t, ak.HasSalesTax)
	assert.Equal(t, "1.76", ak.AvgLocalTaxRate.String())
}

func TestSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	ctx := context.Background()

	mockQuerier.EXPECT().
		UpsertNexusRule(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertNexusRuleParams) (db.NexusRule, error) {
			require.NotNil(t, arg.StateName)
			assert.Equal(t, services.StateName(arg.StateCode), *arg.StateName)
			return db.NexusRule{StateCode: arg.StateCode}, nil
		}).
		Times(len(NexusRules))
	mockQuerier.EXPECT().
		UpsertStateTaxConfig(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertStateTaxConfigParams) (db.StateTaxConfig, error) {
			return db.StateTaxConfig{StateCode: arg.StateCode}, nil
		}).
		Times(len(StateTaxConfigs))

	require.NoError(t, Seed(ctx, mockQuerier))
}

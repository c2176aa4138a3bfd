package refdata

import (
	"time"

	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/shopspring/decimal"
)

// nexusRuleSeed is one state's economic nexus rule. A zero sales or txns
// value means that leg of the threshold is not configured.
type nexusRuleSeed struct {
	state       string
	sales       int64
	txns        int32
	policy      db.ThresholdPolicy
	period      db.MeasurementPeriod
	effective   string
	days        int32
	description string
}

// NexusRules holds current economic nexus thresholds as of October 2025.
// Delaware, Montana, New Hampshire, and Oregon have no sales tax and no
// economic nexus rules.
var NexusRules = []nexusRuleSeed{
	{"AL", 250000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2018-10-01", 30, "Alabama economic nexus: $250,000 in sales"},
	{"AK", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2020-04-01", 30, "Alaska remote seller sales tax: $100k OR 200 transactions"},
	{"AZ", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-10-01", 60, "Arizona economic nexus: $100,000 in sales"},
	{"AR", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-07-01", 60, "Arkansas economic nexus: $100k OR 200 transactions"},
	{"CA", 500000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2019-04-01", 90, "California economic nexus: $500,000 in sales"},
	{"CO", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2019-06-01", 30, "Colorado economic nexus: $100,000 in sales"},
	{"CT", 100000, 200, db.ThresholdPolicyBoth, db.MeasurementPeriodRolling12Months, "2019-07-01", 60, "Connecticut economic nexus: $100k AND 200 transactions"},
	{"FL", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2021-07-01", 30, "Florida economic nexus: $100,000 in sales"},
	{"GA", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2020-01-01", 60, "Georgia economic nexus: $100k OR 200 transactions"},
	{"HI", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2020-07-01", 30, "Hawaii economic nexus: $100k OR 200 transactions"},
	{"ID", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-06-01", 60, "Idaho economic nexus: $100,000 in sales"},
	{"IL", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodRolling12Months, "2019-10-01", 90, "Illinois economic nexus: $100k OR 200 transactions"},
	{"IN", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-10-01", 60, "Indiana economic nexus: $100k OR 200 transactions"},
	{"IA", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2019-01-01", 60, "Iowa economic nexus: $100,000 in sales"},
	{"KS", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2021-07-01", 30, "Kansas economic nexus: $100,000 in sales"},
	{"KY", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-07-01", 60, "Kentucky economic nexus: $100k OR 200 transactions"},
	{"LA", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2020-07-01", 30, "Louisiana economic nexus: $100k OR 200 transactions"},
	{"ME", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-07-01", 30, "Maine economic nexus: $100,000 in sales"},
	{"MD", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-10-01", 60, "Maryland economic nexus: $100k OR 200 transactions"},
	{"MA", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-10-01", 30, "Massachusetts economic nexus: $100,000 in sales"},
	{"MI", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-10-01", 60, "Michigan economic nexus: $100k OR 200 transactions"},
	{"MN", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodRolling12Months, "2019-10-01", 60, "Minnesota economic nexus: $100k OR 200 transactions (rolling)"},
	{"MS", 250000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodRolling12Months, "2020-01-01", 30, "Mississippi economic nexus: $250,000 in sales"},
	{"MO", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2023-01-01", 30, "Missouri economic nexus: $100,000 in sales"},
	{"NE", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-04-01", 60, "Nebraska economic nexus: $100k OR 200 transactions"},
	{"NV", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-10-01", 30, "Nevada economic nexus: $100k OR 200 transactions"},
	{"NJ", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2018-11-01", 30, "New Jersey economic nexus: $100k OR 200 transactions"},
	{"NM", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-07-01", 60, "New Mexico economic nexus: $100,000 in sales"},
	{"NY", 500000, 100, db.ThresholdPolicyBoth, db.MeasurementPeriodPreviousCalendarYear, "2019-06-01", 60, "New York economic nexus: $500k AND 100 transactions"},
	{"NC", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-11-01", 60, "North Carolina economic nexus: $100k OR 200 transactions"},
	{"ND", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-10-01", 60, "North Dakota economic nexus: $100,000 in sales"},
	{"OH", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-08-01", 30, "Ohio economic nexus: $100k OR 200 transactions"},
	{"OK", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-07-01", 60, "Oklahoma economic nexus: $100,000 in sales"},
	{"PA", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodRolling12Months, "2019-07-01", 60, "Pennsylvania economic nexus: $100,000 in sales"},
	{"RI", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-07-01", 30, "Rhode Island economic nexus: $100k OR 200 transactions"},
	{"SC", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodPreviousCalendarYear, "2019-04-26", 60, "South Carolina economic nexus: $100,000 in sales"},
	{"SD", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-03-01", 60, "South Dakota economic nexus: $100k OR 200 transactions (Wayfair origin)"},
	{"TN", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodRolling12Months, "2020-07-01", 30, "Tennessee economic nexus: $100,000 in sales"},
	{"TX", 500000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodRolling12Months, "2019-10-01", 30, "Texas economic nexus: $500,000 in sales"},
	{"UT", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-10-01", 60, "Utah economic nexus: $100k OR 200 transactions"},
	{"VT", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-07-01", 30, "Vermont economic nexus: $100k OR 200 transactions"},
	{"VA", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-07-01", 60, "Virginia economic nexus: $100k OR 200 transactions"},
	{"WA", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-10-01", 30, "Washington economic nexus: $100,000 in sales"},
	{"WV", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-01-01", 60, "West Virginia economic nexus: $100k OR 200 transactions"},
	{"WI", 100000, 0, db.ThresholdPolicySalesOnly, db.MeasurementPeriodCalendarYear, "2019-10-01", 60, "Wisconsin economic nexus: $100,000 in sales"},
	{"WY", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodCalendarYear, "2019-07-01", 60, "Wyoming economic nexus: $100k OR 200 transactions"},
	{"DC", 100000, 200, db.ThresholdPolicyEither, db.MeasurementPeriodPreviousCalendarYear, "2019-01-01", 60, "DC economic nexus: $100k OR 200 transactions"},
}

func (r nexusRuleSeed) toParams(stateName string) db.UpsertNexusRuleParams {
	p := db.UpsertNexusRuleParams{
		StateCode:                r.state,
		StateName:                &stateName,
		ThresholdPolicy:          r.policy,
		MeasurementPeriod:        r.period,
		MarketplaceSalesExcluded: true,
		EffectiveDate:            mustDate(r.effective),
		RuleDescription:          &r.description,
	}
	if r.sales > 0 {
		p.SalesThreshold = decimal.NullDecimal{Decimal: decimal.NewFromInt(r.sales), Valid: true}
	}
	if r.txns > 0 {
		txns := r.txns
		p.TransactionThreshold = &txns
	}
	days := r.days
	p.DaysToRegister = &days
	return p
}

func mustDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

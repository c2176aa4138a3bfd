package refdata

import (
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/shopspring/decimal"
)

type stateTaxSeed struct {
	state     string
	name      string
	taxed     bool
	stateRate string
	localRate string
}

// StateTaxConfigs holds state and average local sales tax rates for all
// fifty states plus DC, current as of October 2025. Alaska has no state
// sales tax but local jurisdictions may impose one.
var StateTaxConfigs = []stateTaxSeed{
	{"AL", "Alabama", true, "4.00", "5.22"},
	{"AK", "Alaska", false, "0.00", "1.76"},
	{"AZ", "Arizona", true, "5.60", "2.77"},
	{"AR", "Arkansas", true, "6.50", "2.93"},
	{"CA", "California", true, "7.25", "2.68"},
	{"CO", "Colorado", true, "2.90", "4.87"},
	{"CT", "Connecticut", true, "6.35", "0.00"},
	{"DE", "Delaware", false, "0.00", "0.00"},
	{"FL", "Florida", true, "6.00", "1.05"},
	{"GA", "Georgia", true, "4.00", "3.37"},
	{"HI", "Hawaii", true, "4.00", "0.44"},
	{"ID", "Idaho", true, "6.00", "0.03"},
	{"IL", "Illinois", true, "6.25", "2.54"},
	{"IN", "Indiana", true, "7.00", "0.00"},
	{"IA", "Iowa", true, "6.00", "0.94"},
	{"KS", "Kansas", true, "6.50", "2.26"},
	{"KY", "Kentucky", true, "6.00", "0.00"},
	{"LA", "Louisiana", true, "4.45", "5.07"},
	{"ME", "Maine", true, "5.50", "0.00"},
	{"MD", "Maryland", true, "6.00", "0.00"},
	{"MA", "Massachusetts", true, "6.25", "0.00"},
	{"MI", "Michigan", true, "6.00", "0.00"},
	{"MN", "Minnesota", true, "6.875", "0.65"},
	{"MS", "Mississippi", true, "7.00", "0.07"},
	{"MO", "Missouri", true, "4.225", "4.08"},
	{"MT", "Montana", false, "0.00", "0.00"},
	{"NE", "Nebraska", true, "5.50", "1.42"},
	{"NV", "Nevada", true, "6.85", "1.53"},
	{"NH", "New Hampshire", false, "0.00", "0.00"},
	{"NJ", "New Jersey", true, "6.625", "0.00"},
	{"NM", "New Mexico", true, "5.125", "2.69"},
	{"NY", "New York", true, "4.00", "4.52"},
	{"NC", "North Carolina", true, "4.75", "2.22"},
	{"ND", "North Dakota", true, "5.00", "2.23"},
	{"OH", "Ohio", true, "5.75", "1.48"},
	{"OK", "Oklahoma", true, "4.50", "4.47"},
	{"OR", "Oregon", false, "0.00", "0.00"},
	{"PA", "Pennsylvania", true, "6.00", "0.34"},
	{"RI", "Rhode Island", true, "7.00", "0.00"},
	{"SC", "South Carolina", true, "6.00", "1.46"},
	{"SD", "South Dakota", true, "4.50", "1.90"},
	{"TN", "Tennessee", true, "7.00", "2.55"},
	{"TX", "Texas", true, "6.25", "1.94"},
	{"UT", "Utah", true, "6.10", "1.11"},
	{"VT", "Vermont", true, "6.00", "0.37"},
	{"VA", "Virginia", true, "5.30", "0.45"},
	{"WA", "Washington", true, "6.50", "2.89"},
	{"WV", "West Virginia", true, "6.00", "0.50"},
	{"WI", "Wisconsin", true, "5.00", "0.44"},
	{"WY", "Wyoming", true, "4.00", "1.36"},
	{"DC", "District of Columbia", true, "6.00", "0.00"},
}

func (s stateTaxSeed) toParams() db.UpsertStateTaxConfigParams {
	return db.UpsertStateTaxConfigParams{
		StateCode:             s.state,
		StateName:             s.name,
		StateTaxRate:          decimal.RequireFromString(s.stateRate),
		AvgLocalTaxRate:       decimal.RequireFromString(s.localRate),
		HasSalesTax:           s.taxed,
		DefaultLookbackMonths: 36,
	}
}

package legal

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateType enum - statutory contribution categories
type RateType string

const (
	RateSSEmployee       RateType = "ss_employee"
	RateSSEmployer       RateType = "ss_employer"
	RateEduEmployee      RateType = "edu_employee"
	RateEduEmployer      RateType = "edu_employer"
	RateOccupationalRisk RateType = "occupational_risk"
	RateSeveranceFund    RateType = "severance_fund"
	RateOther            RateType = "other"
)

// Parameter - one configured statutory rate, versioned by effective date
type Parameter struct {
	ID            string
	CompanyID     string
	Type          RateType
	Percentage    decimal.Decimal
	Active        bool
	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ISRBracket - one row of a company's progressive income tax table.
// ToAmount nil means the bracket is unbounded.
type ISRBracket struct {
	ID          string
	CompanyID   string
	FromAmount  decimal.Decimal
	ToAmount    *decimal.Decimal
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Default rates applied when a company has no active override for a type.
// These values are load-bearing: existing computed records were produced with
// them and they must not change.
var defaultRates = map[RateType]decimal.Decimal{
	RateSSEmployee:       decimal.RequireFromString("9.75"),
	RateSSEmployer:       decimal.RequireFromString("13.25"),
	RateEduEmployee:      decimal.RequireFromString("1.25"),
	RateEduEmployer:      decimal.RequireFromString("1.50"),
	RateOccupationalRisk: decimal.RequireFromString("0.98"),
	RateSeveranceFund:    decimal.RequireFromString("2.25"),
}

// Rates applied to the year-end bonus. Distinct from the regular payroll
// social security rates.
var (
	BonusSSEmployeeRate = decimal.RequireFromString("7.25")
	BonusSSEmployerRate = decimal.RequireFromString("10.75")
)

// DefaultRate returns the documented default percentage for a rate type.
func DefaultRate(t RateType) decimal.Decimal {
	return defaultRates[t]
}

// RateFor resolves the percentage for a rate type: the active configured
// parameter wins, with the most recent effective date breaking ties; when no
// active override exists the documented default applies.
func RateFor(params []Parameter, t RateType) decimal.Decimal {
	var found *Parameter
	for i := range params {
		p := &params[i]
		if p.Type != t || !p.Active {
			continue
		}
		if found == nil || p.EffectiveDate.After(found.EffectiveDate) {
			found = p
		}
	}
	if found != nil {
		return found.Percentage
	}
	return defaultRates[t]
}

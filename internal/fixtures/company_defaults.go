package fixtures

import (
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/shopspring/decimal"
)

// Seed data for a freshly registered company: the statutory contribution
// rates and the progressive income tax table in force. Companies can edit
// these afterwards; the calculators fall back to the documented defaults
// when a parameter row is missing, so seeding is a convenience, not a
// correctness requirement.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultLegalParameters returns the standard contribution rates for a new
// company, effective January 1st of the given year.
func DefaultLegalParameters(companyID string, year int) []legal.Parameter {
	effective := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	types := []legal.RateType{
		legal.RateSSEmployee,
		legal.RateSSEmployer,
		legal.RateEduEmployee,
		legal.RateEduEmployer,
		legal.RateOccupationalRisk,
		legal.RateSeveranceFund,
	}

	params := make([]legal.Parameter, 0, len(types))
	for _, t := range types {
		params = append(params, legal.Parameter{
			CompanyID:     companyID,
			Type:          t,
			Percentage:    legal.DefaultRate(t),
			Active:        true,
			EffectiveDate: effective,
		})
	}
	return params
}

// DefaultISRBrackets returns the statutory three-tier annual income tax
// table: exempt up to 11,000, 15% on the excess up to 50,000, then a fixed
// 5,850 plus 25% on the excess.
func DefaultISRBrackets(companyID string) []legal.ISRBracket {
	eleven := dec("11000")
	fifty := dec("50000")

	return []legal.ISRBracket{
		{
			CompanyID:   companyID,
			FromAmount:  decimal.Zero,
			ToAmount:    &eleven,
			Rate:        decimal.Zero,
			FixedAmount: decimal.Zero,
		},
		{
			CompanyID:   companyID,
			FromAmount:  eleven,
			ToAmount:    &fifty,
			Rate:        dec("15"),
			FixedAmount: decimal.Zero,
		},
		{
			CompanyID:   companyID,
			FromAmount:  fifty,
			ToAmount:    nil,
			Rate:        dec("25"),
			FixedAmount: dec("5850"),
		},
	}
}

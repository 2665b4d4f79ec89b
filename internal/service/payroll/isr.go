package payroll

import (
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/shopspring/decimal"
)

// Fixed ISR schedule (Ley 8 de 2010): annual income up to 11,000 is exempt,
// the band up to 50,000 pays 15% of the excess over 11,000, and anything
// above pays a flat 5,850 plus 25% of the excess over 50,000.
var (
	isrExemptCeiling = decimal.NewFromInt(11000)
	isrMidCeiling    = decimal.NewFromInt(50000)
	isrMidRate       = decimal.RequireFromString("0.15")
	isrTopRate       = decimal.RequireFromString("0.25")
	isrTopFixed      = decimal.NewFromInt(5850)
)

var hundred = decimal.NewFromInt(100)

// CalculateIncomeTax computes the annual ISR liability for an annual taxable
// income under the fixed schedule. The result is exact (not rounded): period
// and installment shares round at their own boundary.
func CalculateIncomeTax(annual decimal.Decimal) decimal.Decimal {
	if annual.LessThanOrEqual(isrExemptCeiling) {
		return decimal.Zero
	}
	if annual.LessThanOrEqual(isrMidCeiling) {
		return annual.Sub(isrExemptCeiling).Mul(isrMidRate)
	}
	return isrTopFixed.Add(annual.Sub(isrMidCeiling).Mul(isrTopRate))
}

// CalculateIncomeTaxFromBrackets evaluates a company-configured bracket table.
// Brackets are expected ordered ascending by FromAmount, non-overlapping,
// with a nil ToAmount on the highest bracket. An empty table is a
// configuration error, never a silent zero.
func CalculateIncomeTaxFromBrackets(annual decimal.Decimal, brackets []legal.ISRBracket) (decimal.Decimal, error) {
	if len(brackets) == 0 {
		return decimal.Zero, legal.ErrNoISRBrackets
	}
	if annual.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	for _, b := range brackets {
		if annual.LessThan(b.FromAmount) {
			continue
		}
		if b.ToAmount != nil && annual.GreaterThan(*b.ToAmount) {
			continue
		}
		excess := annual.Sub(b.FromAmount)
		return b.FixedAmount.Add(excess.Mul(b.Rate).Div(hundred)), nil
	}
	return decimal.Zero, nil
}

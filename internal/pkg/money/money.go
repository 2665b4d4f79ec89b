// Package money provides cent-accurate helpers for payroll arithmetic.
// All amounts flow through shopspring/decimal; sums are carried in integer
// cents so that long chains of deduction lines do not drift.
package money

import "github.com/shopspring/decimal"

var (
	hundred   = decimal.NewFromInt(100)
	centScale = decimal.NewFromInt(100)
)

// Round2 rounds an amount to 2 decimal places, half up. Payroll amounts are
// never negative, so decimal's half-away-from-zero rounding is equivalent.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Cents converts a decimal amount to integer cents, rounding half up.
func Cents(d decimal.Decimal) int64 {
	return d.Mul(centScale).Round(0).IntPart()
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(c int64) decimal.Decimal {
	return decimal.NewFromInt(c).Div(centScale)
}

// Sum adds amounts in the cent domain and returns the decimal total.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	var total int64
	for _, a := range amounts {
		total += Cents(a)
	}
	return FromCents(total)
}

// Percent applies a percentage rate to a base amount and rounds to the cent.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(rate).Div(hundred))
}

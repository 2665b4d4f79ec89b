package payroll

import (
	"testing"

	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateIncomeTax_FixedSchedule(t *testing.T) {
	cases := []struct {
		name   string
		annual string
		want   string
	}{
		{"negative income", "-100", "0"},
		{"zero income", "0", "0"},
		{"below exempt ceiling", "9000", "0"},
		{"exactly at exempt ceiling", "11000", "0"},
		{"one cent over exempt ceiling", "11000.01", "0.0015"},
		{"middle band", "32500", "3225"},
		{"exactly at middle ceiling", "50000", "5850"},
		{"one cent over middle ceiling", "50000.01", "5850.0025"},
		{"top band", "80000", "13350"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateIncomeTax(dec(c.annual))
			assert.True(t, got.Equal(dec(c.want)), "CalculateIncomeTax(%s) = %s, want %s", c.annual, got, c.want)
		})
	}
}

func TestCalculateIncomeTax_ContinuityAtBoundaries(t *testing.T) {
	// No jump at the bracket edges beyond the marginal rate itself.
	atEdge := CalculateIncomeTax(dec("11000"))
	justOver := CalculateIncomeTax(dec("11000.01"))
	assert.True(t, atEdge.IsZero())
	assert.True(t, justOver.IsPositive())
	assert.True(t, justOver.Equal(dec("0.15").Mul(dec("0.01"))))

	topEdge := CalculateIncomeTax(dec("50000"))
	topOver := CalculateIncomeTax(dec("50000.01"))
	assert.True(t, topEdge.Equal(dec("5850")))
	assert.True(t, topOver.Equal(dec("5850").Add(dec("0.25").Mul(dec("0.01")))))
}

func TestCalculateIncomeTaxFromBrackets(t *testing.T) {
	fifty := dec("50000")
	eleven := dec("11000")
	brackets := []legal.ISRBracket{
		{FromAmount: decimal.Zero, ToAmount: &eleven, Rate: decimal.Zero, FixedAmount: decimal.Zero},
		{FromAmount: eleven, ToAmount: &fifty, Rate: dec("15"), FixedAmount: decimal.Zero},
		{FromAmount: fifty, ToAmount: nil, Rate: dec("25"), FixedAmount: dec("5850")},
	}

	got, err := CalculateIncomeTaxFromBrackets(dec("32500"), brackets)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("3225")), "got %s", got)

	got, err = CalculateIncomeTaxFromBrackets(dec("80000"), brackets)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("13350")), "got %s", got)

	got, err = CalculateIncomeTaxFromBrackets(dec("-5"), brackets)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCalculateIncomeTaxFromBrackets_EmptyTableFailsLoudly(t *testing.T) {
	_, err := CalculateIncomeTaxFromBrackets(dec("32500"), nil)
	require.ErrorIs(t, err, legal.ErrNoISRBrackets)
}

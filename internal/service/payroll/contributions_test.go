package payroll

import (
	"testing"
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateContributions_DefaultRates(t *testing.T) {
	base := dec("2500")
	// Non-empty parameter set with no relevant overrides: every type falls
	// back to its documented default.
	params := []legal.Parameter{
		{Type: legal.RateOther, Percentage: dec("1"), Active: true},
	}

	c := CalculateContributions(base, base, params)

	assert.True(t, c.EmployeeSS.Equal(dec("243.75")), "employee SS = %s", c.EmployeeSS)
	assert.True(t, c.EmployerSS.Equal(dec("331.25")), "employer SS = %s", c.EmployerSS)
	assert.True(t, c.EmployeeEducational.Equal(dec("31.25")), "employee edu = %s", c.EmployeeEducational)
	assert.True(t, c.EmployerEducational.Equal(dec("37.50")), "employer edu = %s", c.EmployerEducational)
	assert.True(t, c.OccupationalRisk.Equal(dec("24.50")), "occupational risk = %s", c.OccupationalRisk)
	assert.True(t, c.SeveranceFund.Equal(dec("56.25")), "severance = %s", c.SeveranceFund)
}

func TestCalculateContributions_ActiveOverrideWins(t *testing.T) {
	base := dec("1000")
	params := []legal.Parameter{
		{Type: legal.RateSSEmployee, Percentage: dec("10.00"), Active: true},
		{Type: legal.RateSSEmployee, Percentage: dec("12.00"), Active: false}, // inactive, ignored
	}

	c := CalculateContributions(base, base, params)

	assert.True(t, c.EmployeeSS.Equal(dec("100")), "employee SS = %s", c.EmployeeSS)
	// Untouched types keep defaults.
	assert.True(t, c.EmployerSS.Equal(dec("132.50")), "employer SS = %s", c.EmployerSS)
}

func TestCalculateContributions_MostRecentEffectiveDateWins(t *testing.T) {
	base := dec("1000")
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	params := []legal.Parameter{
		{Type: legal.RateSSEmployee, Percentage: dec("9.00"), Active: true, EffectiveDate: older},
		{Type: legal.RateSSEmployee, Percentage: dec("11.00"), Active: true, EffectiveDate: newer},
	}

	c := CalculateContributions(base, base, params)
	assert.True(t, c.EmployeeSS.Equal(dec("110")), "employee SS = %s", c.EmployeeSS)
}

func TestCalculateContributions_DifferentBases(t *testing.T) {
	// The bonus is exempt from educational insurance: callers pass a zero
	// educational base and the SS amounts are unaffected.
	c := CalculateContributions(dec("2500"), decimal.Zero, nil)

	assert.True(t, c.EmployeeSS.Equal(dec("243.75")))
	assert.True(t, c.EmployeeEducational.IsZero())
	assert.True(t, c.EmployerEducational.IsZero())
}

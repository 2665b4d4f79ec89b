package sipe

import (
	"testing"
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testParameters() []legal.Parameter {
	return []legal.Parameter{
		{Type: legal.RateOther, Percentage: decimal.Zero, Active: true},
	}
}

func testBrackets() []legal.ISRBracket {
	fifty := dec("50000")
	eleven := dec("11000")
	return []legal.ISRBracket{
		{FromAmount: decimal.Zero, ToAmount: &eleven},
		{FromAmount: eleven, ToAmount: &fifty, Rate: dec("15")},
		{FromAmount: fifty, Rate: dec("25"), FixedAmount: dec("5850")},
	}
}

func activeEmployee(id, salary string) employee.Employee {
	return employee.Employee{
		ID:         id,
		CompanyID:  "co-1",
		BaseSalary: dec(salary),
		HireDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:     employee.StatusActive,
	}
}

func TestCalculateRemittance_SalaryFallback(t *testing.T) {
	// No payroll entries: every active employee contributes from the
	// base salary, with no income tax withheld.
	got, err := CalculateRemittance(RemittanceInput{
		Period: "2026-05",
		Employees: []employee.Employee{
			activeEmployee("emp-1", "2500"),
			activeEmployee("emp-2", "1800"),
			activeEmployee("emp-3", "1000"),
		},
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	// round2(2500 x 9.75%) + round2(1800 x 9.75%) + round2(1000 x 9.75%)
	assert.True(t, got.Totals.EmployeeSS.Equal(dec("516.75")), "employee SS = %s", got.Totals.EmployeeSS)
	assert.True(t, got.Totals.EmployerSS.Equal(dec("702.25")), "employer SS = %s", got.Totals.EmployerSS)
	assert.True(t, got.Totals.EmployeeEducational.Equal(dec("66.25")))
	assert.True(t, got.Totals.EmployerEducational.Equal(dec("79.50")))
	assert.True(t, got.Totals.OccupationalRisk.Equal(dec("51.94")))
	assert.True(t, got.Totals.IncomeTax.IsZero(), "fallback must not invent withheld tax")
	assert.True(t, got.TotalDue.Equal(got.Totals.TotalDue()))
}

func TestCalculateRemittance_EntriesCoverEmployeeExactlyOnce(t *testing.T) {
	entries := []domainPayroll.PayrollEntry{
		{
			EmployeeID: "emp-1", Period: "2026-05", Status: domainPayroll.EntryStatusApproved,
			EmployeeSS: dec("243.75"), EmployerSS: dec("331.25"),
			EmployeeEducational: dec("31.25"), EmployerEducational: dec("37.50"),
			OccupationalRisk: dec("24.50"), IncomeTax: dec("248.08"),
		},
		// Another period: must not leak into May.
		{
			EmployeeID: "emp-1", Period: "2026-04", Status: domainPayroll.EntryStatusPaid,
			EmployeeSS: dec("999"), IncomeTax: dec("999"),
		},
	}
	inactive := activeEmployee("emp-3", "5000")
	inactive.Status = employee.StatusInactive

	got, err := CalculateRemittance(RemittanceInput{
		Period: "2026-05",
		Employees: []employee.Employee{
			activeEmployee("emp-1", "2500"), // covered by its entry
			activeEmployee("emp-2", "1000"), // fallback
			inactive,                        // ignored
		},
		Entries:    entries,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	// emp-1 from the entry, emp-2 from the fallback, emp-3 not at all.
	assert.True(t, got.Totals.EmployeeSS.Equal(dec("341.25")), "employee SS = %s", got.Totals.EmployeeSS)
	assert.True(t, got.Totals.IncomeTax.Equal(dec("248.08")), "income tax = %s", got.Totals.IncomeTax)
}

func TestCalculateRemittance_BiweeklyEntriesBothCount(t *testing.T) {
	entries := []domainPayroll.PayrollEntry{
		{EmployeeID: "emp-1", Period: "2026-05-15", EmployeeSS: dec("121.88"), IncomeTax: dec("124.04")},
		{EmployeeID: "emp-1", Period: "2026-05-31", EmployeeSS: dec("121.88"), IncomeTax: dec("124.04")},
	}
	got, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-05",
		Employees:  []employee.Employee{activeEmployee("emp-1", "2500")},
		Entries:    entries,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.True(t, got.Totals.EmployeeSS.Equal(dec("243.76")), "employee SS = %s", got.Totals.EmployeeSS)
	assert.True(t, got.Totals.IncomeTax.Equal(dec("248.08")))
}

func TestCalculateRemittance_BonusMonthAddsInstallmentSlice(t *testing.T) {
	got, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-04",
		Employees:  []employee.Employee{activeEmployee("emp-1", "2500")},
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	// Salary fallback 243.75 plus the bonus installment: gross bonus
	// 10,000, one third 3,333.33, SS at 7.25% = 241.67.
	assert.True(t, got.Totals.EmployeeSS.Equal(dec("485.42")), "employee SS = %s", got.Totals.EmployeeSS)
	assert.True(t, got.Totals.EmployerSS.Equal(dec("689.58")), "employer SS = %s", got.Totals.EmployerSS)
	// One third of the 248.08 bonus tax share.
	assert.True(t, got.Totals.IncomeTax.Equal(dec("82.69")), "income tax = %s", got.Totals.IncomeTax)

	// May carries no bonus slice for the same roster.
	may, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-05",
		Employees:  []employee.Employee{activeEmployee("emp-1", "2500")},
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)
	assert.True(t, may.Totals.EmployeeSS.Equal(dec("243.75")))
}

func TestCalculateRemittance_BonusMonthCombinesEntryAndInstallment(t *testing.T) {
	// An employee with an April payroll entry contributes the entry sums
	// AND the bonus installment slice, never the salary fallback.
	entries := []domainPayroll.PayrollEntry{
		{
			EmployeeID: "emp-1", Period: "2026-04", Status: domainPayroll.EntryStatusApproved,
			GrossPay:   dec("2500"),
			EmployeeSS: dec("243.75"), EmployerSS: dec("331.25"),
			EmployeeEducational: dec("31.25"), EmployerEducational: dec("37.50"),
			OccupationalRisk: dec("24.50"), IncomeTax: dec("248.08"),
		},
	}
	got, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-04",
		Employees:  []employee.Employee{activeEmployee("emp-1", "2500")},
		Entries:    entries,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	// The entry makes April the only qualifying month, so the gross bonus
	// is 2,500 x 4/12 = 833.33 and the installment base 277.78.
	// Entry 243.75 + round2(277.78 x 7.25%) = 243.75 + 20.14.
	assert.True(t, got.Totals.EmployeeSS.Equal(dec("263.89")), "employee SS = %s", got.Totals.EmployeeSS)
	// Entry 331.25 + round2(277.78 x 10.75%) = 331.25 + 29.86.
	assert.True(t, got.Totals.EmployerSS.Equal(dec("361.11")), "employer SS = %s", got.Totals.EmployerSS)
	// Entry 248.08 plus one third of the 248.08 bonus tax share.
	assert.True(t, got.Totals.IncomeTax.Equal(dec("330.77")), "income tax = %s", got.Totals.IncomeTax)
	// The bonus slice carries no educational insurance or risk premium.
	assert.True(t, got.Totals.EmployeeEducational.Equal(dec("31.25")))
	assert.True(t, got.Totals.EmployerEducational.Equal(dec("37.50")))
	assert.True(t, got.Totals.OccupationalRisk.Equal(dec("24.50")))
	assert.True(t, got.TotalDue.Equal(got.Totals.TotalDue()))
}

func TestCalculateRemittance_EmptyRoster(t *testing.T) {
	got, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-12",
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)
	assert.True(t, got.TotalDue.IsZero())
	assert.True(t, got.Totals.EmployeeSS.IsZero())
}

func TestCalculateRemittance_DueDate(t *testing.T) {
	got, err := CalculateRemittance(RemittanceInput{
		Period:     "2026-03",
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC), got.DueDate)

	// December rolls into January of the next year.
	got, err = CalculateRemittance(RemittanceInput{
		Period:     "2026-12",
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), got.DueDate)
}

func TestCalculateRemittance_InvalidInput(t *testing.T) {
	_, err := CalculateRemittance(RemittanceInput{Period: "2026-03-15", Parameters: testParameters(), Brackets: testBrackets()})
	require.ErrorIs(t, err, sipe.ErrInvalidPeriod)

	_, err = CalculateRemittance(RemittanceInput{Period: "bad", Parameters: testParameters(), Brackets: testBrackets()})
	require.ErrorIs(t, err, sipe.ErrInvalidPeriod)

	_, err = CalculateRemittance(RemittanceInput{Period: "2026-03", Brackets: testBrackets()})
	require.ErrorIs(t, err, legal.ErrNoLegalParameters)

	_, err = CalculateRemittance(RemittanceInput{Period: "2026-03", Parameters: testParameters()})
	require.ErrorIs(t, err, legal.ErrNoISRBrackets)
}

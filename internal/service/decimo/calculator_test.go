package decimo

import (
	"testing"
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
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

func testEmployee(salary string, hired time.Time) employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		CompanyID:  "co-1",
		Cedula:     "8-123-4567",
		FullName:   "Ana Morales",
		BaseSalary: dec(salary),
		HireDate:   hired,
		Status:     employee.StatusActive,
	}
}

func TestCalculateAnnualBonus_FullYear(t *testing.T) {
	got, err := CalculateAnnualBonus(BonusInput{
		Employee:   testEmployee("2500", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)),
		Year:       2026,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, got.MonthsWorked)
	assert.True(t, got.TotalIncome.Equal(dec("30000")), "income = %s", got.TotalIncome)
	// 30,000 x 4/12
	assert.True(t, got.GrossBonus.Equal(dec("10000")), "gross = %s", got.GrossBonus)
	assert.True(t, got.EmployeeSS.Equal(dec("725")), "employee SS = %s", got.EmployeeSS)
	assert.True(t, got.EmployerSS.Equal(dec("1075")), "employer SS = %s", got.EmployerSS)
	// Annual tax 3,225 over 13 payments.
	assert.True(t, got.IncomeTax.Equal(dec("248.08")), "tax share = %s", got.IncomeTax)
	assert.True(t, got.NetBonus.Equal(dec("9026.92")), "net = %s", got.NetBonus)
}

func TestCalculateAnnualBonus_ProratedFromHireDate(t *testing.T) {
	tests := []struct {
		name       string
		hired      time.Time
		wantMonths int
		wantIncome string
	}{
		{"hired January", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 12, "30000"},
		{"hired July", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 6, "15000"},
		{"hired December", time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 1, "2500"},
		{"hired prior year", time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), 12, "30000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateAnnualBonus(BonusInput{
				Employee:   testEmployee("2500", tt.hired),
				Year:       2026,
				Parameters: testParameters(),
				Brackets:   testBrackets(),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonths, got.MonthsWorked)
			assert.True(t, got.TotalIncome.Equal(dec(tt.wantIncome)), "income = %s", got.TotalIncome)
		})
	}
}

func TestCalculateAnnualBonus_HiredAfterYearIsZero(t *testing.T) {
	got, err := CalculateAnnualBonus(BonusInput{
		Employee:   testEmployee("2500", time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)),
		Year:       2026,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, got.MonthsWorked)
	assert.True(t, got.GrossBonus.IsZero())
	assert.True(t, got.NetBonus.IsZero())
	for _, inst := range got.Installments {
		assert.True(t, inst.Amount.IsZero())
	}
}

func TestCalculateAnnualBonus_EntriesOverrideHireDate(t *testing.T) {
	emp := testEmployee("2500", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	entries := []domainPayroll.PayrollEntry{
		// Two biweekly entries in the same month count once.
		{EmployeeID: emp.ID, Period: "2026-01-15", Status: domainPayroll.EntryStatusPaid, GrossPay: dec("1300")},
		{EmployeeID: emp.ID, Period: "2026-01-31", Status: domainPayroll.EntryStatusPaid, GrossPay: dec("1300")},
		{EmployeeID: emp.ID, Period: "2026-02", Status: domainPayroll.EntryStatusApproved, GrossPay: dec("2700")},
		// Drafts, other employees and other years are ignored.
		{EmployeeID: emp.ID, Period: "2026-03", Status: domainPayroll.EntryStatusDraft, GrossPay: dec("9999")},
		{EmployeeID: "emp-2", Period: "2026-04", Status: domainPayroll.EntryStatusPaid, GrossPay: dec("9999")},
		{EmployeeID: emp.ID, Period: "2025-12", Status: domainPayroll.EntryStatusPaid, GrossPay: dec("9999")},
	}

	got, err := CalculateAnnualBonus(BonusInput{
		Employee:   emp,
		Entries:    entries,
		Year:       2026,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.MonthsWorked)
	assert.True(t, got.TotalIncome.Equal(dec("5300")), "income = %s", got.TotalIncome)
	// 5,300 x 4/12 = 1,766.666... -> 1,766.67
	assert.True(t, got.GrossBonus.Equal(dec("1766.67")), "gross = %s", got.GrossBonus)
}

func TestCalculateAnnualBonus_InstallmentSchedule(t *testing.T) {
	got, err := CalculateAnnualBonus(BonusInput{
		Employee:   testEmployee("2500", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)),
		Year:       2026,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	wantDates := []time.Time{
		time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	sum := decimal.Zero
	for i, inst := range got.Installments {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, wantDates[i], inst.DueDate)
		sum = sum.Add(inst.Amount)
	}
	// Equal thirds round to the cent; the slices may miss the net by a
	// cent or two in total.
	diff := got.NetBonus.Sub(sum).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.02")), "net %s vs installments %s", got.NetBonus, sum)
}

func TestCalculateAnnualBonus_TaxDivisors(t *testing.T) {
	in := BonusInput{
		Employee:   testEmployee("2500", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)),
		Year:       2026,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	}

	in.Divisor = decimo.TaxShareDivisor13
	got13, err := CalculateAnnualBonus(in)
	require.NoError(t, err)
	assert.True(t, got13.IncomeTax.Equal(dec("248.08")), "divisor 13 = %s", got13.IncomeTax)

	in.Divisor = decimo.TaxShareDivisor12
	got12, err := CalculateAnnualBonus(in)
	require.NoError(t, err)
	assert.True(t, got12.IncomeTax.Equal(dec("268.75")), "divisor 12 = %s", got12.IncomeTax)

	in.Divisor = decimo.TaxShareDivisor(10)
	_, err = CalculateAnnualBonus(in)
	require.ErrorIs(t, err, decimo.ErrInvalidTaxDivisor)
}

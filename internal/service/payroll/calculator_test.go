package payroll

import (
	"testing"
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParameters() []legal.Parameter {
	// Non-empty set with no overrides: defaults apply for every rate type.
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

func testEmployee(salary string) employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		CompanyID:  "co-1",
		Cedula:     "8-123-4567",
		FullName:   "Ana Morales",
		BaseSalary: dec(salary),
		HireDate:   time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     employee.StatusActive,
	}
}

func TestCalculatePeriod_MonthlyExample(t *testing.T) {
	// The reference case: $2,500/month, monthly period, no extras,
	// default rates.
	got, err := CalculatePeriod(PeriodInput{
		Employee:   testEmployee("2500"),
		Period:     "2026-03",
		PeriodType: payroll.PeriodTypeMonthly,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.True(t, got.GrossPay.Equal(dec("2500")), "gross = %s", got.GrossPay)
	assert.True(t, got.EmployeeSS.Equal(dec("243.75")), "employee SS = %s", got.EmployeeSS)
	assert.True(t, got.EmployeeEducational.Equal(dec("31.25")), "employee edu = %s", got.EmployeeEducational)
	// Annual taxable 32,500 -> annual tax 3,225 -> monthly share 248.08
	assert.True(t, got.IncomeTax.Equal(dec("248.08")), "income tax = %s", got.IncomeTax)
	assert.True(t, got.TotalDeductions.Equal(dec("523.08")), "total deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(dec("1976.92")), "net = %s", got.NetPay)

	assert.True(t, got.EmployerSS.Equal(dec("331.25")))
	assert.True(t, got.EmployerEducational.Equal(dec("37.50")))
	assert.True(t, got.OccupationalRisk.Equal(dec("24.50")))
}

func TestCalculatePeriod_GrossPayIsExactSum(t *testing.T) {
	got, err := CalculatePeriod(PeriodInput{
		Employee:    testEmployee("1200"),
		Period:      "2026-05",
		PeriodType:  payroll.PeriodTypeMonthly,
		Overtime:    dec("100.10"),
		Bonuses:     dec("50.05"),
		OtherIncome: dec("0.01"),
		Parameters:  testParameters(),
		Brackets:    testBrackets(),
	})
	require.NoError(t, err)

	want := dec("1200").Add(dec("100.10")).Add(dec("50.05")).Add(dec("0.01"))
	assert.True(t, got.GrossPay.Equal(want), "gross = %s, want %s", got.GrossPay, want)
}

func TestCalculatePeriod_BiweeklyHalvesBaseAndDeductions(t *testing.T) {
	emp := testEmployee("2500")
	emp.BankLoanDeduction = dec("200")

	got, err := CalculatePeriod(PeriodInput{
		Employee:   emp,
		Period:     "2026-03-15",
		PeriodType: payroll.PeriodTypeBiweekly,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	assert.True(t, got.BasePay.Equal(dec("1250")), "base = %s", got.BasePay)
	assert.True(t, got.GrossPay.Equal(dec("1250")))
	// SS on the period gross, not the monthly salary.
	assert.True(t, got.EmployeeSS.Equal(dec("121.88")), "employee SS = %s", got.EmployeeSS)
	// Annual tax 3,225 over 26 half-periods.
	assert.True(t, got.IncomeTax.Equal(dec("124.04")), "income tax = %s", got.IncomeTax)
	// Monthly 200 loan halved.
	assert.True(t, got.BankLoan.Equal(dec("100")), "bank loan = %s", got.BankLoan)
}

func TestCalculatePeriod_MonthGatedDeductions(t *testing.T) {
	emp := testEmployee("2000")
	emp.BankLoanDeduction = dec("150")
	emp.BankLoanMonths = []int{1, 7} // January and July only
	emp.PersonalLoanDeduction = dec("80")
	// Empty months list: applies every month.

	in := PeriodInput{
		Employee:   emp,
		Period:     "2026-07",
		PeriodType: payroll.PeriodTypeMonthly,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	}
	got, err := CalculatePeriod(in)
	require.NoError(t, err)
	assert.True(t, got.BankLoan.Equal(dec("150")), "July bank loan = %s", got.BankLoan)
	assert.True(t, got.PersonalLoan.Equal(dec("80")))

	in.Period = "2026-08"
	got, err = CalculatePeriod(in)
	require.NoError(t, err)
	assert.True(t, got.BankLoan.IsZero(), "August bank loan = %s", got.BankLoan)
	assert.True(t, got.PersonalLoan.Equal(dec("80")))
}

func TestCalculatePeriod_CustomDeductions(t *testing.T) {
	emp := testEmployee("2000")
	emp.CustomDeductions = []employee.CustomDeduction{
		{Name: "Union dues", Mode: employee.DeductionModeFixed, Value: dec("25"), Active: true},
		{Name: "Savings plan", Mode: employee.DeductionModePercentage, Value: dec("5"), Active: true},
		{Name: "Old plan", Mode: employee.DeductionModeFixed, Value: dec("99"), Active: false},
		{Name: "December club", Mode: employee.DeductionModeFixed, Value: dec("40"), Active: true, Months: []int{12}},
	}

	got, err := CalculatePeriod(PeriodInput{
		Employee:   emp,
		Period:     "2026-06",
		PeriodType: payroll.PeriodTypeMonthly,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.NoError(t, err)

	require.Len(t, got.CustomDeductions, 2)
	assert.Equal(t, "Union dues", got.CustomDeductions[0].Name)
	assert.True(t, got.CustomDeductions[0].Amount.Equal(dec("25")))
	assert.Equal(t, "Savings plan", got.CustomDeductions[1].Name)
	// 5% of 2,000 gross.
	assert.True(t, got.CustomDeductions[1].Amount.Equal(dec("100")))
}

func TestCalculatePeriod_Idempotent(t *testing.T) {
	in := PeriodInput{
		Employee:   testEmployee("3100.55"),
		Period:     "2026-02",
		PeriodType: payroll.PeriodTypeMonthly,
		Overtime:   dec("75.25"),
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	}
	first, err := CalculatePeriod(in)
	require.NoError(t, err)
	second, err := CalculatePeriod(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculatePeriod_MissingConfigurationFails(t *testing.T) {
	in := PeriodInput{
		Employee:   testEmployee("2500"),
		Period:     "2026-03",
		PeriodType: payroll.PeriodTypeMonthly,
		Brackets:   testBrackets(),
	}
	_, err := CalculatePeriod(in)
	require.ErrorIs(t, err, legal.ErrNoLegalParameters)

	in.Parameters = testParameters()
	in.Brackets = nil
	_, err = CalculatePeriod(in)
	require.ErrorIs(t, err, legal.ErrNoISRBrackets)
}

func TestCalculatePeriod_RejectsNegativeExtras(t *testing.T) {
	_, err := CalculatePeriod(PeriodInput{
		Employee:   testEmployee("2500"),
		Period:     "2026-03",
		PeriodType: payroll.PeriodTypeMonthly,
		Overtime:   dec("-1"),
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.ErrorIs(t, err, payroll.ErrNegativeAmount)
}

func TestCalculatePeriod_InvalidPeriod(t *testing.T) {
	_, err := CalculatePeriod(PeriodInput{
		Employee:   testEmployee("2500"),
		Period:     "bad",
		PeriodType: payroll.PeriodTypeMonthly,
		Parameters: testParameters(),
		Brackets:   testBrackets(),
	})
	require.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

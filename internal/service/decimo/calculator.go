package decimo

import (
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/pkg/money"
	payrollCalc "github.com/planillapa/planilla-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

// The gross bonus is one twelfth of earnings per four-month sub-period,
// summed over the three sub-periods: total x 4/12.
var (
	bonusNumerator   = decimal.NewFromInt(4)
	bonusDenominator = decimal.NewFromInt(12)
	three            = decimal.NewFromInt(3)
	thirteen         = decimal.NewFromInt(13)
)

// BonusInput carries everything the bonus calculator needs. Entries may be
// the company's full entry set; the calculator filters by employee and year.
type BonusInput struct {
	Employee employee.Employee
	Entries  []domainPayroll.PayrollEntry
	Year     int
	// Divisor selects the annual tax slice attributed to the bonus.
	// Zero means the default of 13.
	Divisor decimo.TaxShareDivisor

	Parameters []legal.Parameter
	Brackets   []legal.ISRBracket
}

// CalculateAnnualBonus computes one employee's prorated year-end bonus, its
// statutory deductions and the three-installment schedule. Zero months
// worked is a valid all-zero result, not an error.
func CalculateAnnualBonus(in BonusInput) (decimo.Calculation, error) {
	divisor := in.Divisor
	if divisor == 0 {
		divisor = decimo.TaxShareDivisor13
	}
	if divisor != decimo.TaxShareDivisor12 && divisor != decimo.TaxShareDivisor13 {
		return decimo.Calculation{}, decimo.ErrInvalidTaxDivisor
	}

	totalIncome, monthsWorked := qualifyingIncome(in.Employee, in.Entries, in.Year)

	calc := decimo.Calculation{
		Year:         in.Year,
		MonthsWorked: monthsWorked,
		TotalIncome:  totalIncome,
		Installments: installmentSchedule(in.Year, decimal.Zero),
	}
	if monthsWorked == 0 {
		return calc, nil
	}

	gross := money.Round2(totalIncome.Mul(bonusNumerator).Div(bonusDenominator))

	// The bonus carries its own social security rates and is exempt from
	// educational insurance.
	employeeSS := money.Percent(gross, legal.BonusSSEmployeeRate)
	employerSS := money.Percent(gross, legal.BonusSSEmployerRate)

	annualTax := payrollCalc.CalculateIncomeTax(in.Employee.BaseSalary.Mul(thirteen))
	taxShare := money.Round2(annualTax.Div(decimal.NewFromInt(int64(divisor))))

	totalDeductions := money.Sum(employeeSS, taxShare)
	net := gross.Sub(totalDeductions)
	installment := money.Round2(net.Div(three))

	calc.GrossBonus = gross
	calc.EmployeeSS = employeeSS
	calc.EmployerSS = employerSS
	calc.IncomeTax = taxShare
	calc.TotalDeductions = totalDeductions
	calc.NetBonus = net
	calc.Installments = installmentSchedule(in.Year, installment)
	return calc, nil
}

// qualifyingIncome reconstructs the employee's earned income and months
// worked in the target year. Non-draft payroll entries are authoritative;
// without any, months derive from the hire date and income from the base
// salary over those months.
func qualifyingIncome(emp employee.Employee, entries []domainPayroll.PayrollEntry, year int) (decimal.Decimal, int) {
	months := make(map[string]struct{})
	total := decimal.Zero
	for _, e := range entries {
		if e.EmployeeID != emp.ID || e.Status == domainPayroll.EntryStatusDraft {
			continue
		}
		if y, err := domainPayroll.PeriodYear(e.Period); err != nil || y != year {
			continue
		}
		months[domainPayroll.YearMonth(e.Period)] = struct{}{}
		total = total.Add(e.GrossPay)
	}
	if len(months) > 0 {
		return money.Round2(total), len(months)
	}

	worked := monthsFromHireDate(emp.HireDate, year)
	if worked == 0 {
		return decimal.Zero, 0
	}
	return money.Round2(emp.BaseSalary.Mul(decimal.NewFromInt(int64(worked)))), worked
}

// monthsFromHireDate: hired in a prior year means the full 12 months; hired
// during the target year means the months from the hire month (inclusive) to
// December; hired later means zero.
func monthsFromHireDate(hireDate time.Time, year int) int {
	switch {
	case hireDate.Year() < year:
		return 12
	case hireDate.Year() == year:
		return 12 - (int(hireDate.Month()) - 1)
	default:
		return 0
	}
}

func installmentSchedule(year int, amount decimal.Decimal) [3]decimo.Installment {
	var out [3]decimo.Installment
	for i, m := range decimo.InstallmentMonths {
		out[i] = decimo.Installment{
			Number:  i + 1,
			DueDate: time.Date(year, m, 15, 0, 0, 0, 0, time.UTC),
			Amount:  amount,
		}
	}
	return out
}

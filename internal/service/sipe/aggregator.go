package sipe

import (
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
	"github.com/planillapa/planilla-backend-go/internal/pkg/money"
	decimoCalc "github.com/planillapa/planilla-backend-go/internal/service/decimo"
	payrollCalc "github.com/planillapa/planilla-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

var three = decimal.NewFromInt(3)

// bonusMonths: the year-end bonus installments fall due in these months, and
// their statutory contributions join that month's remittance.
var bonusMonths = map[time.Month]bool{
	time.April:    true,
	time.August:   true,
	time.December: true,
}

// RemittanceInput carries a company-wide snapshot for one calendar month.
type RemittanceInput struct {
	Period     string // YYYY-MM
	Entries    []domainPayroll.PayrollEntry
	Employees  []employee.Employee
	Parameters []legal.Parameter
	Brackets   []legal.ISRBracket
}

// CalculateRemittance aggregates a company's statutory remittance for one
// month. Every active employee contributes exactly once per category:
// through their payroll entries when present, otherwise through a
// base-salary fallback. Bonus-installment months add a bonus slice for every
// active employee on top of either path.
func CalculateRemittance(in RemittanceInput) (sipe.Summary, error) {
	year, err := domainPayroll.PeriodYear(in.Period)
	if err != nil {
		return sipe.Summary{}, sipe.ErrInvalidPeriod
	}
	monthNum, err := domainPayroll.PeriodMonth(in.Period)
	if err != nil {
		return sipe.Summary{}, sipe.ErrInvalidPeriod
	}
	if len(in.Period) != 7 {
		return sipe.Summary{}, sipe.ErrInvalidPeriod
	}
	if len(in.Parameters) == 0 {
		return sipe.Summary{}, legal.ErrNoLegalParameters
	}
	if len(in.Brackets) == 0 {
		return sipe.Summary{}, legal.ErrNoISRBrackets
	}
	month := time.Month(monthNum)

	totals := sipe.Zero()
	covered := make(map[string]bool)
	for _, e := range in.Entries {
		if domainPayroll.YearMonth(e.Period) != in.Period {
			continue
		}
		covered[e.EmployeeID] = true
		totals = totals.Add(entryTotals(e))
	}

	if bonusMonths[month] {
		for _, emp := range in.Employees {
			if !emp.IsActive() {
				continue
			}
			slice, err := bonusInstallmentTotals(emp, in.Entries, year, in.Parameters, in.Brackets)
			if err != nil {
				return sipe.Summary{}, err
			}
			totals = totals.Add(slice)
		}
	}

	for _, emp := range in.Employees {
		if !emp.IsActive() || covered[emp.ID] {
			continue
		}
		totals = totals.Add(salaryFallbackTotals(emp, in.Parameters))
	}

	return sipe.Summary{
		Period:   in.Period,
		Totals:   totals,
		TotalDue: totals.TotalDue(),
		DueDate:  dueDate(year, month),
	}, nil
}

func entryTotals(e domainPayroll.PayrollEntry) sipe.Totals {
	return sipe.Totals{
		EmployeeSS:          e.EmployeeSS,
		EmployerSS:          e.EmployerSS,
		EmployeeEducational: e.EmployeeEducational,
		EmployerEducational: e.EmployerEducational,
		OccupationalRisk:    e.OccupationalRisk,
		IncomeTax:           e.IncomeTax,
	}
}

// bonusInstallmentTotals: one third of the employee's gross bonus is this
// month's installment base; SS applies at the bonus rates and one third of
// the bonus tax share joins the ISR total.
func bonusInstallmentTotals(emp employee.Employee, entries []domainPayroll.PayrollEntry, year int, params []legal.Parameter, brackets []legal.ISRBracket) (sipe.Totals, error) {
	bonus, err := decimoCalc.CalculateAnnualBonus(decimoCalc.BonusInput{
		Employee:   emp,
		Entries:    entries,
		Year:       year,
		Parameters: params,
		Brackets:   brackets,
	})
	if err != nil {
		return sipe.Totals{}, err
	}
	base := money.Round2(bonus.GrossBonus.Div(three))
	return sipe.Totals{
		EmployeeSS: money.Percent(base, legal.BonusSSEmployeeRate),
		EmployerSS: money.Percent(base, legal.BonusSSEmployerRate),
		IncomeTax:  money.Round2(bonus.IncomeTax.Div(three)),
	}, nil
}

// salaryFallbackTotals covers active employees with no payroll entry this
// month: their contributions come straight from the base salary.
func salaryFallbackTotals(emp employee.Employee, params []legal.Parameter) sipe.Totals {
	c := payrollCalc.CalculateContributions(emp.BaseSalary, emp.BaseSalary, params)
	return sipe.Totals{
		EmployeeSS:          c.EmployeeSS,
		EmployerSS:          c.EmployerSS,
		EmployeeEducational: c.EmployeeEducational,
		EmployerEducational: c.EmployerEducational,
		OccupationalRisk:    c.OccupationalRisk,
	}
}

// dueDate: the remittance is due the 15th of the month after the period.
func dueDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 14)
}

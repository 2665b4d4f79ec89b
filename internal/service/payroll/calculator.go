package payroll

import (
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Annual taxable income for regular payroll is thirteen monthly salaries:
// the year-end bonus is part of the taxable base by law.
var annualSalaryMonths = decimal.NewFromInt(13)

// Period tax divisors. Fixed policy constants, not derived values: monthly
// payroll spreads the annual liability over 13 payments, biweekly over 26
// half-periods. Existing records were computed with these divisors.
var (
	taxDivisorMonthly  = decimal.NewFromInt(13)
	taxDivisorBiweekly = decimal.NewFromInt(26)
)

var two = decimal.NewFromInt(2)

// PeriodInput carries everything the period calculator needs. The calculator
// is pure: no I/O, no clock, no hidden state.
type PeriodInput struct {
	Employee   employee.Employee
	Period     string // YYYY-MM or YYYY-MM-DD
	PeriodType payroll.PeriodType

	Overtime          decimal.Decimal
	Bonuses           decimal.Decimal
	OtherIncome       decimal.Decimal
	OtherWithholdings decimal.Decimal

	Parameters []legal.Parameter
	Brackets   []legal.ISRBracket
}

// CalculatePeriod computes one employee's full breakdown for one pay period.
// Missing legal parameters or an empty ISR bracket table are configuration
// errors; the calculator refuses to substitute zeros. Intermediate amounts
// round to the cent at every step, matching historical records.
func CalculatePeriod(in PeriodInput) (payroll.Calculation, error) {
	if len(in.Parameters) == 0 {
		return payroll.Calculation{}, legal.ErrNoLegalParameters
	}
	if len(in.Brackets) == 0 {
		return payroll.Calculation{}, legal.ErrNoISRBrackets
	}
	if in.PeriodType != payroll.PeriodTypeBiweekly && in.PeriodType != payroll.PeriodTypeMonthly {
		return payroll.Calculation{}, payroll.ErrInvalidPeriodType
	}
	if in.Overtime.IsNegative() || in.Bonuses.IsNegative() || in.OtherIncome.IsNegative() || in.OtherWithholdings.IsNegative() {
		return payroll.Calculation{}, payroll.ErrNegativeAmount
	}

	month, err := payroll.PeriodMonth(in.Period)
	if err != nil {
		return payroll.Calculation{}, err
	}

	emp := in.Employee
	biweekly := in.PeriodType == payroll.PeriodTypeBiweekly

	basePay := money.Round2(emp.BaseSalary)
	if biweekly {
		basePay = money.Round2(emp.BaseSalary.Div(two))
	}

	overtime := money.Round2(in.Overtime)
	bonuses := money.Round2(in.Bonuses)
	otherIncome := money.Round2(in.OtherIncome)
	gross := money.Sum(basePay, overtime, bonuses, otherIncome)

	// The period gross is the base for both the SS and the educational
	// insurance contribution; no exemptions apply at this level.
	contrib := CalculateContributions(gross, gross, in.Parameters)

	annualTaxable := emp.BaseSalary.Mul(annualSalaryMonths)
	annualTax := CalculateIncomeTax(annualTaxable)
	divisor := taxDivisorMonthly
	if biweekly {
		divisor = taxDivisorBiweekly
	}
	periodTax := money.Round2(annualTax.Div(divisor))

	bankLoan := recurringDeduction(emp.BankLoanDeduction, emp.BankLoanMonths, month, biweekly)
	personalLoan := recurringDeduction(emp.PersonalLoanDeduction, emp.PersonalLoanMonths, month, biweekly)

	var customLines []payroll.DeductionLine
	customAmounts := []decimal.Decimal{}
	for _, d := range emp.CustomDeductions {
		if !d.Active || !employee.AppliesInMonth(d.Months, month) {
			continue
		}
		amount, err := d.AmountFor(gross)
		if err != nil {
			return payroll.Calculation{}, err
		}
		if biweekly {
			amount = money.Round2(amount.Div(two))
		}
		customLines = append(customLines, payroll.DeductionLine{Name: d.Name, Amount: amount})
		customAmounts = append(customAmounts, amount)
	}

	otherWithholdings := money.Round2(in.OtherWithholdings)
	deductionParts := append([]decimal.Decimal{
		contrib.EmployeeSS,
		contrib.EmployeeEducational,
		periodTax,
		bankLoan,
		personalLoan,
		otherWithholdings,
	}, customAmounts...)
	totalDeductions := money.Sum(deductionParts...)

	net := gross.Sub(totalDeductions)

	return payroll.Calculation{
		Period:     in.Period,
		PeriodType: in.PeriodType,

		BasePay:     basePay,
		Overtime:    overtime,
		Bonuses:     bonuses,
		OtherIncome: otherIncome,
		GrossPay:    gross,

		EmployeeSS:          contrib.EmployeeSS,
		EmployeeEducational: contrib.EmployeeEducational,
		IncomeTax:           periodTax,
		BankLoan:            bankLoan,
		PersonalLoan:        personalLoan,
		CustomDeductions:    customLines,
		OtherWithholdings:   otherWithholdings,
		TotalDeductions:     totalDeductions,
		NetPay:              net,

		EmployerSS:          contrib.EmployerSS,
		EmployerEducational: contrib.EmployerEducational,
		OccupationalRisk:    contrib.OccupationalRisk,
		SeveranceFund:       contrib.SeveranceFund,
	}, nil
}

// recurringDeduction resolves a month-gated fixed monthly deduction for the
// period. Biweekly periods carry half the monthly amount.
func recurringDeduction(amount decimal.Decimal, months []int, month int, biweekly bool) decimal.Decimal {
	if !amount.IsPositive() || !employee.AppliesInMonth(months, month) {
		return decimal.Zero
	}
	amount = money.Round2(amount)
	if biweekly {
		amount = money.Round2(amount.Div(two))
	}
	return amount
}

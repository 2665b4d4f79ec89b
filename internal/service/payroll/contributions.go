package payroll

import (
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Contributions - statutory contribution amounts for one taxable base.
type Contributions struct {
	EmployeeSS          decimal.Decimal
	EmployerSS          decimal.Decimal
	EmployeeEducational decimal.Decimal
	EmployerEducational decimal.Decimal
	OccupationalRisk    decimal.Decimal
	SeveranceFund       decimal.Decimal
}

// CalculateContributions applies the company's configured rates to a social
// security base and an educational insurance base. The two bases may differ:
// the year-end bonus is exempt from educational insurance. A rate type with
// no active override falls back to the documented default; each output is
// independent of the others.
func CalculateContributions(ssBase, eduBase decimal.Decimal, params []legal.Parameter) Contributions {
	return Contributions{
		EmployeeSS:          money.Percent(ssBase, legal.RateFor(params, legal.RateSSEmployee)),
		EmployerSS:          money.Percent(ssBase, legal.RateFor(params, legal.RateSSEmployer)),
		EmployeeEducational: money.Percent(eduBase, legal.RateFor(params, legal.RateEduEmployee)),
		EmployerEducational: money.Percent(eduBase, legal.RateFor(params, legal.RateEduEmployer)),
		OccupationalRisk:    money.Percent(ssBase, legal.RateFor(params, legal.RateOccupationalRisk)),
		SeveranceFund:       money.Percent(ssBase, legal.RateFor(params, legal.RateSeveranceFund)),
	}
}

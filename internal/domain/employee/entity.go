package employee

import (
	"time"

	"github.com/planillapa/planilla-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	CompanyID  string
	Cedula     string
	FullName   string
	BaseSalary decimal.Decimal
	HireDate   time.Time
	Status     Status

	// Recurring deduction configuration. Month lists are calendar months
	// (1-12); an empty list means the deduction applies every month.
	BankLoanDeduction     decimal.Decimal
	BankLoanMonths        []int
	PersonalLoanDeduction decimal.Decimal
	PersonalLoanMonths    []int
	CustomDeductions      []CustomDeduction

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// DeductionMode enum - how a custom deduction amount is derived.
type DeductionMode string

const (
	DeductionModeFixed      DeductionMode = "fixed"
	DeductionModePercentage DeductionMode = "percentage"
)

// CustomDeduction - one configured recurring deduction line. Value is a fixed
// amount for DeductionModeFixed and a percentage of gross pay for
// DeductionModePercentage.
type CustomDeduction struct {
	Name   string          `json:"name"`
	Mode   DeductionMode   `json:"mode"`
	Value  decimal.Decimal `json:"value"`
	Active bool            `json:"active"`
	Months []int           `json:"months,omitempty"`
}

// AmountFor resolves the deduction amount against a period's gross pay.
func (d CustomDeduction) AmountFor(gross decimal.Decimal) (decimal.Decimal, error) {
	switch d.Mode {
	case DeductionModeFixed:
		return money.Round2(d.Value), nil
	case DeductionModePercentage:
		return money.Percent(gross, d.Value), nil
	default:
		return decimal.Zero, ErrInvalidDeductionMode
	}
}

// AppliesInMonth reports whether a month-gated deduction applies in the given
// calendar month. An empty or nil list means every month.
func AppliesInMonth(months []int, month int) bool {
	if len(months) == 0 {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

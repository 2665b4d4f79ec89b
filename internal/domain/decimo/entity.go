package decimo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusCalculated    Status = "calculated"
	StatusPartiallyPaid Status = "partially_paid"
	StatusFullyPaid     Status = "fully_paid"
)

// TaxShareDivisor selects how the annual ISR liability is sliced for the
// bonus. Both divisors exist in production data: 13 treats the bonus as one
// of thirteen annual payments, 12 as one of twelve. 13 is the default.
type TaxShareDivisor int

const (
	TaxShareDivisor13 TaxShareDivisor = 13
	TaxShareDivisor12 TaxShareDivisor = 12
)

// Installments of the year-end bonus are due mid April, August and December.
var InstallmentMonths = [3]time.Month{time.April, time.August, time.December}

// Installment - one of the three equal bonus payments.
type Installment struct {
	Number  int             `json:"number"` // 1-3
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// Calculation - one employee's computed bonus for one calendar year.
type Calculation struct {
	Year         int
	MonthsWorked int
	TotalIncome  decimal.Decimal
	GrossBonus   decimal.Decimal

	EmployeeSS      decimal.Decimal
	EmployerSS      decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetBonus        decimal.Decimal

	Installments [3]Installment
}

// DecimoTercerMes - a persisted Calculation plus payment lifecycle.
type DecimoTercerMes struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Year       int

	MonthsWorked int
	TotalIncome  decimal.Decimal
	GrossBonus   decimal.Decimal

	EmployeeSS      decimal.Decimal
	EmployerSS      decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetBonus        decimal.Decimal

	Installments     [3]Installment
	InstallmentsPaid int
	Status           Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCedula *string
}

// StatusForPaid maps a number of paid installments to a lifecycle status.
func StatusForPaid(paid int) Status {
	switch {
	case paid <= 0:
		return StatusCalculated
	case paid >= 3:
		return StatusFullyPaid
	default:
		return StatusPartiallyPaid
	}
}

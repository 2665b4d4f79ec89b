package payroll

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType enum
type PeriodType string

const (
	PeriodTypeBiweekly PeriodType = "biweekly"
	PeriodTypeMonthly  PeriodType = "monthly"
)

// EntryStatus enum
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusPaid     EntryStatus = "paid"
)

// DeductionLine - one resolved custom deduction in a computed period.
type DeductionLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Calculation - the full computed breakdown for one employee and one period.
// Produced by the period calculator; the service turns it into a PayrollEntry.
type Calculation struct {
	Period     string
	PeriodType PeriodType

	BasePay     decimal.Decimal
	Overtime    decimal.Decimal
	Bonuses     decimal.Decimal
	OtherIncome decimal.Decimal
	GrossPay    decimal.Decimal

	EmployeeSS          decimal.Decimal
	EmployeeEducational decimal.Decimal
	IncomeTax           decimal.Decimal
	BankLoan            decimal.Decimal
	PersonalLoan        decimal.Decimal
	CustomDeductions    []DeductionLine
	OtherWithholdings   decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetPay              decimal.Decimal

	EmployerSS          decimal.Decimal
	EmployerEducational decimal.Decimal
	OccupationalRisk    decimal.Decimal
	SeveranceFund       decimal.Decimal
}

// PayrollEntry - a persisted Calculation. Immutable once paid except that the
// surrounding service may recompute entries still in draft or approved state.
type PayrollEntry struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Period     string
	PeriodType PeriodType

	BasePay     decimal.Decimal
	Overtime    decimal.Decimal
	Bonuses     decimal.Decimal
	OtherIncome decimal.Decimal
	GrossPay    decimal.Decimal

	EmployeeSS          decimal.Decimal
	EmployeeEducational decimal.Decimal
	IncomeTax           decimal.Decimal
	BankLoan            decimal.Decimal
	PersonalLoan        decimal.Decimal
	CustomDeductions    []DeductionLine
	OtherWithholdings   decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetPay              decimal.Decimal

	EmployerSS          decimal.Decimal
	EmployerEducational decimal.Decimal
	OccupationalRisk    decimal.Decimal
	SeveranceFund       decimal.Decimal

	Status       EntryStatus
	CalculatedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCedula *string
}

// PeriodMonth extracts the calendar month from a period identifier,
// "YYYY-MM" or "YYYY-MM-DD".
func PeriodMonth(period string) (int, error) {
	if len(period) < 7 || period[4] != '-' {
		return 0, ErrInvalidPeriod
	}
	m, err := strconv.Atoi(period[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, ErrInvalidPeriod
	}
	return m, nil
}

// PeriodYear extracts the calendar year from a period identifier.
func PeriodYear(period string) (int, error) {
	if len(period) < 7 || period[4] != '-' {
		return 0, ErrInvalidPeriod
	}
	y, err := strconv.Atoi(period[:4])
	if err != nil {
		return 0, ErrInvalidPeriod
	}
	return y, nil
}

// YearMonth truncates a period identifier to its "YYYY-MM" prefix.
func YearMonth(period string) string {
	if len(period) >= 7 {
		return period[:7]
	}
	return period
}

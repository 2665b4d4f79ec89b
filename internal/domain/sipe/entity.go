package sipe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Totals - per-category remittance sums for one company and one month.
// Methods return a new value instead of mutating, so partial sums stay
// testable.
type Totals struct {
	EmployeeSS          decimal.Decimal
	EmployerSS          decimal.Decimal
	EmployeeEducational decimal.Decimal
	EmployerEducational decimal.Decimal
	OccupationalRisk    decimal.Decimal
	IncomeTax           decimal.Decimal
}

// Zero returns an all-zero accumulator. decimal.Decimal's zero value already
// behaves as 0; this exists for readability at fold call sites.
func Zero() Totals {
	return Totals{}
}

// Add combines two accumulators category by category.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		EmployeeSS:          t.EmployeeSS.Add(o.EmployeeSS),
		EmployerSS:          t.EmployerSS.Add(o.EmployerSS),
		EmployeeEducational: t.EmployeeEducational.Add(o.EmployeeEducational),
		EmployerEducational: t.EmployerEducational.Add(o.EmployerEducational),
		OccupationalRisk:    t.OccupationalRisk.Add(o.OccupationalRisk),
		IncomeTax:           t.IncomeTax.Add(o.IncomeTax),
	}
}

// TotalDue sums all six categories.
func (t Totals) TotalDue() decimal.Decimal {
	return t.EmployeeSS.
		Add(t.EmployerSS).
		Add(t.EmployeeEducational).
		Add(t.EmployerEducational).
		Add(t.OccupationalRisk).
		Add(t.IncomeTax)
}

// Summary - the result of aggregating a company's remittance for one month.
type Summary struct {
	Period   string
	Totals   Totals
	TotalDue decimal.Decimal
	DueDate  time.Time
}

// SIPEPayment - a persisted Summary plus payment lifecycle.
type SIPEPayment struct {
	ID        string
	CompanyID string
	Period    string

	Totals   Totals
	TotalDue decimal.Decimal
	DueDate  time.Time

	Status           Status
	PaymentReference *string
	PaymentDate      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

package sipe

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSIPERequest struct {
	Period string `json:"period"` // YYYY-MM
}

func (r *CalculateSIPERequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYearMonth(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentReference) {
		errs = append(errs, validator.ValidationError{Field: "payment_reference", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SIPEPaymentResponse struct {
	ID     string `json:"id"`
	Period string `json:"period"`

	EmployeeSS          decimal.Decimal `json:"employee_ss"`
	EmployerSS          decimal.Decimal `json:"employer_ss"`
	EmployeeEducational decimal.Decimal `json:"employee_educational"`
	EmployerEducational decimal.Decimal `json:"employer_educational"`
	OccupationalRisk    decimal.Decimal `json:"occupational_risk"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	TotalDue            decimal.Decimal `json:"total_due"`

	DueDate          string  `json:"due_date"`
	Status           string  `json:"status"`
	PaymentReference *string `json:"payment_reference,omitempty"`
	PaymentDate      *string `json:"payment_date,omitempty"`
}

package decimo

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateDecimoRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	// TaxDivisor is optional; 0 means the default of 13.
	TaxDivisor int `json:"tax_divisor,omitempty"`
}

func (r *CalculateDecimoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid calendar year"})
	}
	if r.TaxDivisor != 0 && r.TaxDivisor != int(TaxShareDivisor12) && r.TaxDivisor != int(TaxShareDivisor13) {
		errs = append(errs, validator.ValidationError{Field: "tax_divisor", Message: "must be 12 or 13"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateDecimoRequest struct {
	Year       int `json:"year"`
	TaxDivisor int `json:"tax_divisor,omitempty"`
}

func (r *GenerateDecimoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid calendar year"})
	}
	if r.TaxDivisor != 0 && r.TaxDivisor != int(TaxShareDivisor12) && r.TaxDivisor != int(TaxShareDivisor13) {
		errs = append(errs, validator.ValidationError{Field: "tax_divisor", Message: "must be 12 or 13"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InstallmentResponse struct {
	Number  int             `json:"number"`
	DueDate string          `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
	Paid    bool            `json:"paid"`
}

type DecimoResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	EmployeeCedula string `json:"employee_cedula,omitempty"`
	Year           int    `json:"year"`

	MonthsWorked int             `json:"months_worked"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	GrossBonus   decimal.Decimal `json:"gross_bonus"`

	EmployeeSS      decimal.Decimal `json:"employee_ss"`
	EmployerSS      decimal.Decimal `json:"employer_ss"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetBonus        decimal.Decimal `json:"net_bonus"`

	Installments     []InstallmentResponse `json:"installments"`
	InstallmentsPaid int                   `json:"installments_paid"`
	Status           string                `json:"status"`
}

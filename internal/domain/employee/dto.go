package employee

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Cedula     string          `json:"cedula"`
	FullName   string          `json:"full_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HireDate   string          `json:"hire_date"`

	BankLoanDeduction     *decimal.Decimal  `json:"bank_loan_deduction,omitempty"`
	BankLoanMonths        []int             `json:"bank_loan_months,omitempty"`
	PersonalLoanDeduction *decimal.Decimal  `json:"personal_loan_deduction,omitempty"`
	PersonalLoanMonths    []int             `json:"personal_loan_months,omitempty"`
	CustomDeductions      []CustomDeduction `json:"custom_deductions,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{Field: "cedula", Message: "invalid cedula format"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.BankLoanDeduction != nil && r.BankLoanDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bank_loan_deduction", Message: "must be non-negative"})
	}
	if r.PersonalLoanDeduction != nil && r.PersonalLoanDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "personal_loan_deduction", Message: "must be non-negative"})
	}
	if !validator.AreValidMonths(r.BankLoanMonths) {
		errs = append(errs, validator.ValidationError{Field: "bank_loan_months", Message: "months must be between 1 and 12"})
	}
	if !validator.AreValidMonths(r.PersonalLoanMonths) {
		errs = append(errs, validator.ValidationError{Field: "personal_loan_months", Message: "months must be between 1 and 12"})
	}
	errs = append(errs, validateCustomDeductions(r.CustomDeductions)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCustomDeductions(deductions []CustomDeduction) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, d := range deductions {
		field := "custom_deductions[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(d.Name) {
			errs = append(errs, validator.ValidationError{Field: field + ".name", Message: "is required"})
		}
		if d.Mode != DeductionModeFixed && d.Mode != DeductionModePercentage {
			errs = append(errs, validator.ValidationError{Field: field + ".mode", Message: "must be 'fixed' or 'percentage'"})
		}
		if d.Value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".value", Message: "must be non-negative"})
		}
		if !validator.AreValidMonths(d.Months) {
			errs = append(errs, validator.ValidationError{Field: field + ".months", Message: "months must be between 1 and 12"})
		}
	}
	return errs
}

type UpdateEmployeeRequest struct {
	ID         string
	FullName   *string          `json:"full_name,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	HireDate   *string          `json:"hire_date,omitempty"`

	BankLoanDeduction     *decimal.Decimal   `json:"bank_loan_deduction,omitempty"`
	BankLoanMonths        *[]int             `json:"bank_loan_months,omitempty"`
	PersonalLoanDeduction *decimal.Decimal   `json:"personal_loan_deduction,omitempty"`
	PersonalLoanMonths    *[]int             `json:"personal_loan_months,omitempty"`
	CustomDeductions      *[]CustomDeduction `json:"custom_deductions,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.BankLoanDeduction != nil && r.BankLoanDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bank_loan_deduction", Message: "must be non-negative"})
	}
	if r.PersonalLoanDeduction != nil && r.PersonalLoanDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "personal_loan_deduction", Message: "must be non-negative"})
	}
	if r.BankLoanMonths != nil && !validator.AreValidMonths(*r.BankLoanMonths) {
		errs = append(errs, validator.ValidationError{Field: "bank_loan_months", Message: "months must be between 1 and 12"})
	}
	if r.PersonalLoanMonths != nil && !validator.AreValidMonths(*r.PersonalLoanMonths) {
		errs = append(errs, validator.ValidationError{Field: "personal_loan_months", Message: "months must be between 1 and 12"})
	}
	if r.CustomDeductions != nil {
		errs = append(errs, validateCustomDeductions(*r.CustomDeductions)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	Cedula     string          `json:"cedula"`
	FullName   string          `json:"full_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HireDate   string          `json:"hire_date"`
	Status     string          `json:"status"`

	BankLoanDeduction     decimal.Decimal   `json:"bank_loan_deduction"`
	BankLoanMonths        []int             `json:"bank_loan_months,omitempty"`
	PersonalLoanDeduction decimal.Decimal   `json:"personal_loan_deduction"`
	PersonalLoanMonths    []int             `json:"personal_loan_months,omitempty"`
	CustomDeductions      []CustomDeduction `json:"custom_deductions,omitempty"`
}

package payroll

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayrollRequest struct {
	EmployeeID        string           `json:"employee_id"`
	Period            string           `json:"period"`
	PeriodType        string           `json:"period_type"`
	Overtime          *decimal.Decimal `json:"overtime,omitempty"`
	Bonuses           *decimal.Decimal `json:"bonuses,omitempty"`
	OtherIncome       *decimal.Decimal `json:"other_income,omitempty"`
	OtherWithholdings *decimal.Decimal `json:"other_withholdings,omitempty"`
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM or YYYY-MM-DD"})
	}
	if r.PeriodType != string(PeriodTypeBiweekly) && r.PeriodType != string(PeriodTypeMonthly) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "must be 'biweekly' or 'monthly'"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"overtime":           r.Overtime,
		"bonuses":            r.Bonuses,
		"other_income":       r.OtherIncome,
		"other_withholdings": r.OtherWithholdings,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayrollRequest struct {
	Period      string   `json:"period"`
	PeriodType  string   `json:"period_type"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM or YYYY-MM-DD"})
	}
	if r.PeriodType != string(PeriodTypeBiweekly) && r.PeriodType != string(PeriodTypeMonthly) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "must be 'biweekly' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EntryIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entry_ids", Message: "at least one entry is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryFilter struct {
	Period     *string `json:"period,omitempty"`
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type PayrollEntryResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	EmployeeCedula string `json:"employee_cedula,omitempty"`
	Period         string `json:"period"`
	PeriodType     string `json:"period_type"`

	BasePay     decimal.Decimal `json:"base_pay"`
	Overtime    decimal.Decimal `json:"overtime"`
	Bonuses     decimal.Decimal `json:"bonuses"`
	OtherIncome decimal.Decimal `json:"other_income"`
	GrossPay    decimal.Decimal `json:"gross_pay"`

	EmployeeSS          decimal.Decimal `json:"employee_ss"`
	EmployeeEducational decimal.Decimal `json:"employee_educational"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	BankLoan            decimal.Decimal `json:"bank_loan"`
	PersonalLoan        decimal.Decimal `json:"personal_loan"`
	CustomDeductions    []DeductionLine `json:"custom_deductions,omitempty"`
	OtherWithholdings   decimal.Decimal `json:"other_withholdings"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`

	EmployerSS          decimal.Decimal `json:"employer_ss"`
	EmployerEducational decimal.Decimal `json:"employer_educational"`
	OccupationalRisk    decimal.Decimal `json:"occupational_risk"`
	SeveranceFund       decimal.Decimal `json:"severance_fund"`

	Status       string `json:"status"`
	CalculatedAt string `json:"calculated_at"`
}

type ListEntriesResponse struct {
	Data       []PayrollEntryResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

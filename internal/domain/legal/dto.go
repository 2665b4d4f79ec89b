package legal

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PARAMETER DTOs ==========

type CreateParameterRequest struct {
	Type          string          `json:"type"`
	Percentage    decimal.Decimal `json:"percentage"`
	Active        *bool           `json:"active,omitempty"`
	EffectiveDate string          `json:"effective_date"`
}

var validRateTypes = []string{
	string(RateSSEmployee),
	string(RateSSEmployer),
	string(RateEduEmployee),
	string(RateEduEmployer),
	string(RateOccupationalRisk),
	string(RateSeveranceFund),
	string(RateOther),
}

func (r *CreateParameterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, validRateTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown rate type"})
	}
	if r.Percentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateParameterRequest struct {
	ID            string
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	Active        *bool            `json:"active,omitempty"`
	EffectiveDate *string          `json:"effective_date,omitempty"`
}

func (r *UpdateParameterRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Percentage != nil && r.Percentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be non-negative"})
	}
	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ParameterResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Type          string          `json:"type"`
	Percentage    decimal.Decimal `json:"percentage"`
	Active        bool            `json:"active"`
	EffectiveDate string          `json:"effective_date"`
}

// ========== BRACKET DTOs ==========

type CreateBracketRequest struct {
	FromAmount  decimal.Decimal  `json:"from_amount"`
	ToAmount    *decimal.Decimal `json:"to_amount,omitempty"`
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixed_amount"`
}

func (r *CreateBracketRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FromAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "from_amount", Message: "must be non-negative"})
	}
	if r.ToAmount != nil && r.ToAmount.LessThanOrEqual(r.FromAmount) {
		errs = append(errs, validator.ValidationError{Field: "to_amount", Message: "must be greater than from_amount"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.FixedAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	FromAmount  decimal.Decimal  `json:"from_amount"`
	ToAmount    *decimal.Decimal `json:"to_amount,omitempty"`
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixed_amount"`
}

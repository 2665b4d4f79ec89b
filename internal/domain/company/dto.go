package company

import (
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name    string  `json:"name"`
	RUC     string  `json:"ruc"`
	Address *string `json:"address,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.RUC) {
		errs = append(errs, validator.ValidationError{Field: "ruc", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	RUC     string  `json:"ruc"`
	Address *string `json:"address,omitempty"`
}

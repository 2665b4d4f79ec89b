package response

import (
	"errors"
	"net/http"

	"github.com/planillapa/planilla-backend-go/internal/domain/company"
	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
	"github.com/planillapa/planilla-backend-go/internal/domain/user"
	"github.com/planillapa/planilla-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCedulaExists):
		Conflict(w, "Cedula already registered in this company")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrInvalidDeductionMode),
		errors.Is(err, employee.ErrInvalidCedula),
		errors.Is(err, employee.ErrInvalidBaseSalary):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryAlreadyPaid):
		Conflict(w, "Payroll entry already paid")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Invalid payroll entry status transition")
	case errors.Is(err, payroll.ErrCannotDeletePaid):
		Conflict(w, "Cannot delete a paid payroll entry")
	case errors.Is(err, payroll.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidPeriodType),
		errors.Is(err, payroll.ErrNegativeAmount):
		BadRequest(w, err.Error(), nil)

	// Legal configuration errors
	case errors.Is(err, legal.ErrParameterNotFound):
		NotFound(w, "Legal parameter not found")
	case errors.Is(err, legal.ErrBracketNotFound):
		NotFound(w, "ISR bracket not found")
	case errors.Is(err, legal.ErrOverlappingBracket):
		Conflict(w, "ISR bracket overlaps an existing bracket")
	case errors.Is(err, legal.ErrInvalidRateType),
		errors.Is(err, legal.ErrInvalidPercentage):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, legal.ErrNoLegalParameters),
		errors.Is(err, legal.ErrNoISRBrackets):
		// Missing configuration is an operator problem, not a client one,
		// but the client needs to know the calculation is blocked.
		Conflict(w, err.Error())

	// Decimo domain errors
	case errors.Is(err, decimo.ErrNotFound):
		NotFound(w, "Decimo record not found")
	case errors.Is(err, decimo.ErrAlreadyFullyPaid):
		Conflict(w, "Decimo already fully paid")
	case errors.Is(err, decimo.ErrNoInstallmentsToPay):
		Conflict(w, "All installments are already paid")
	case errors.Is(err, decimo.ErrInvalidYear),
		errors.Is(err, decimo.ErrInvalidTaxDivisor):
		BadRequest(w, err.Error(), nil)

	// SIPE domain errors
	case errors.Is(err, sipe.ErrPaymentNotFound):
		NotFound(w, "SIPE payment not found")
	case errors.Is(err, sipe.ErrAlreadyPaid):
		Conflict(w, "SIPE payment already marked paid")
	case errors.Is(err, sipe.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrRUCExists):
		Conflict(w, "RUC already registered")

	// Access control errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrRoleNotAllowed):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

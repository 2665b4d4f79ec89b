package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Cedulas are unique per company, not globally.
	_, err = s.employeeRepo.GetByCedula(ctx, companyID, req.Cedula)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrCedulaExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:  companyID,
		Cedula:     req.Cedula,
		FullName:   req.FullName,
		BaseSalary: req.BaseSalary,
		HireDate:   hireDate,
		Status:     employee.StatusActive,

		BankLoanDeduction:     orZero(req.BankLoanDeduction),
		BankLoanMonths:        req.BankLoanMonths,
		PersonalLoanDeduction: orZero(req.PersonalLoanDeduction),
		PersonalLoanMonths:    req.PersonalLoanMonths,
		CustomDeductions:      req.CustomDeductions,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toEmployeeResponse(emp))
	}
	return out, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID, companyID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, companyID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.setStatus(ctx, id, employee.StatusInactive)
}

func (s *EmployeeServiceImpl) ReactivateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.setStatus(ctx, id, employee.StatusActive)
}

func (s *EmployeeServiceImpl) setStatus(ctx context.Context, id string, status employee.Status) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.Status == status {
		if status == employee.StatusActive {
			return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyActive
		}
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.SetStatus(ctx, id, companyID, status); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Status = status
	return toEmployeeResponse(emp), nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		CompanyID:  e.CompanyID,
		Cedula:     e.Cedula,
		FullName:   e.FullName,
		BaseSalary: e.BaseSalary,
		HireDate:   e.HireDate.Format(time.DateOnly),
		Status:     string(e.Status),

		BankLoanDeduction:     e.BankLoanDeduction,
		BankLoanMonths:        e.BankLoanMonths,
		PersonalLoanDeduction: e.PersonalLoanDeduction,
		PersonalLoanMonths:    e.PersonalLoanMonths,
		CustomDeductions:      e.CustomDeductions,
	}
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return decimal.Zero
}

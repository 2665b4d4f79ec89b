package employee

import "context"

// EmployeeService defines business logic for employee operations (companyID from JWT)
type EmployeeService interface {
	// CreateEmployee registers a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists the company's employees, active and inactive
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies partial updates to an employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee takes an employee off the active payroll
	DeactivateEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ReactivateEmployee puts an inactive employee back on payroll
	ReactivateEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}

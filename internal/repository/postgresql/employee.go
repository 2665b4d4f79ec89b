package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, cedula, full_name, base_salary, hire_date, status,
	bank_loan_deduction, bank_loan_months,
	personal_loan_deduction, personal_loan_months,
	custom_deductions, created_at, updated_at, deleted_at
`

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	deductionsJSON, _ := json.Marshal(newEmployee.CustomDeductions)

	query := `
		INSERT INTO employees (
			id, company_id, cedula, full_name, base_salary, hire_date, status,
			bank_loan_deduction, bank_loan_months,
			personal_loan_deduction, personal_loan_months,
			custom_deductions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + employeeColumns

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query,
		newID(), newEmployee.CompanyID, newEmployee.Cedula, newEmployee.FullName,
		newEmployee.BaseSalary, newEmployee.HireDate, newEmployee.Status,
		newEmployee.BankLoanDeduction, newEmployee.BankLoanMonths,
		newEmployee.PersonalLoanDeduction, newEmployee.PersonalLoanMonths,
		deductionsJSON,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_cedula") {
			return employee.Employee{}, employee.ErrCedulaExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByCedula(ctx context.Context, companyID string, cedula string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND cedula = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, companyID, cedula))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by cedula: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.listByCompany(ctx, companyID, false)
}

func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.listByCompany(ctx, companyID, true)
}

func (r *employeeRepository) listByCompany(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND status = 'active'`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.BaseSalary != nil {
		addSet("base_salary", *req.BaseSalary)
	}
	if req.HireDate != nil {
		addSet("hire_date", *req.HireDate)
	}
	if req.BankLoanDeduction != nil {
		addSet("bank_loan_deduction", *req.BankLoanDeduction)
	}
	if req.BankLoanMonths != nil {
		addSet("bank_loan_months", *req.BankLoanMonths)
	}
	if req.PersonalLoanDeduction != nil {
		addSet("personal_loan_deduction", *req.PersonalLoanDeduction)
	}
	if req.PersonalLoanMonths != nil {
		addSet("personal_loan_months", *req.PersonalLoanMonths)
	}
	if req.CustomDeductions != nil {
		deductionsJSON, _ := json.Marshal(*req.CustomDeductions)
		addSet("custom_deductions", deductionsJSON)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL
	`, strings.Join(setClauses, ", "), argIdx, argIdx+1)
	args = append(args, req.ID, companyID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) SetStatus(ctx context.Context, id string, companyID string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, status, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func scanEmployeeRow(row rowScanner) (employee.Employee, error) {
	var e employee.Employee
	var deductionsBytes []byte
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Cedula, &e.FullName, &e.BaseSalary, &e.HireDate, &e.Status,
		&e.BankLoanDeduction, &e.BankLoanMonths,
		&e.PersonalLoanDeduction, &e.PersonalLoanMonths,
		&deductionsBytes, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	_ = json.Unmarshal(deductionsBytes, &e.CustomDeductions)
	return e, nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollEntryColumns = `
	pe.id, pe.employee_id, pe.company_id, pe.period, pe.period_type,
	pe.base_pay, pe.overtime, pe.bonuses, pe.other_income, pe.gross_pay,
	pe.employee_ss, pe.employee_educational, pe.income_tax,
	pe.bank_loan, pe.personal_loan, pe.custom_deductions, pe.other_withholdings,
	pe.total_deductions, pe.net_pay,
	pe.employer_ss, pe.employer_educational, pe.occupational_risk, pe.severance_fund,
	pe.status, pe.calculated_at, pe.created_at, pe.updated_at,
	e.full_name AS employee_name, e.cedula AS employee_cedula
`

func (r *payrollRepository) UpsertEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	deductionsJSON, _ := json.Marshal(entry.CustomDeductions)

	query := `
		INSERT INTO payroll_entries (
			id, employee_id, company_id, period, period_type,
			base_pay, overtime, bonuses, other_income, gross_pay,
			employee_ss, employee_educational, income_tax,
			bank_loan, personal_loan, custom_deductions, other_withholdings,
			total_deductions, net_pay,
			employer_ss, employer_educational, occupational_risk, severance_fund,
			status, calculated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (employee_id, period) DO UPDATE SET
			period_type = EXCLUDED.period_type,
			base_pay = EXCLUDED.base_pay,
			overtime = EXCLUDED.overtime,
			bonuses = EXCLUDED.bonuses,
			other_income = EXCLUDED.other_income,
			gross_pay = EXCLUDED.gross_pay,
			employee_ss = EXCLUDED.employee_ss,
			employee_educational = EXCLUDED.employee_educational,
			income_tax = EXCLUDED.income_tax,
			bank_loan = EXCLUDED.bank_loan,
			personal_loan = EXCLUDED.personal_loan,
			custom_deductions = EXCLUDED.custom_deductions,
			other_withholdings = EXCLUDED.other_withholdings,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			employer_ss = EXCLUDED.employer_ss,
			employer_educational = EXCLUDED.employer_educational,
			occupational_risk = EXCLUDED.occupational_risk,
			severance_fund = EXCLUDED.severance_fund,
			status = EXCLUDED.status,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, period, period_type,
			base_pay, overtime, bonuses, other_income, gross_pay,
			employee_ss, employee_educational, income_tax,
			bank_loan, personal_loan, custom_deductions, other_withholdings,
			total_deductions, net_pay,
			employer_ss, employer_educational, occupational_risk, severance_fund,
			status, calculated_at, created_at, updated_at
	`

	var e payroll.PayrollEntry
	var deductionsBytes []byte
	err := q.QueryRow(ctx, query,
		newID(), entry.EmployeeID, entry.CompanyID, entry.Period, entry.PeriodType,
		entry.BasePay, entry.Overtime, entry.Bonuses, entry.OtherIncome, entry.GrossPay,
		entry.EmployeeSS, entry.EmployeeEducational, entry.IncomeTax,
		entry.BankLoan, entry.PersonalLoan, deductionsJSON, entry.OtherWithholdings,
		entry.TotalDeductions, entry.NetPay,
		entry.EmployerSS, entry.EmployerEducational, entry.OccupationalRisk, entry.SeveranceFund,
		entry.Status, entry.CalculatedAt,
	).Scan(
		&e.ID, &e.EmployeeID, &e.CompanyID, &e.Period, &e.PeriodType,
		&e.BasePay, &e.Overtime, &e.Bonuses, &e.OtherIncome, &e.GrossPay,
		&e.EmployeeSS, &e.EmployeeEducational, &e.IncomeTax,
		&e.BankLoan, &e.PersonalLoan, &deductionsBytes, &e.OtherWithholdings,
		&e.TotalDeductions, &e.NetPay,
		&e.EmployerSS, &e.EmployerEducational, &e.OccupationalRisk, &e.SeveranceFund,
		&e.Status, &e.CalculatedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollEntry{}, fmt.Errorf("failed to upsert payroll entry: %w", err)
	}
	_ = json.Unmarshal(deductionsBytes, &e.CustomDeductions)

	return e, nil
}

func (r *payrollRepository) GetEntryByID(ctx context.Context, id string, companyID string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.id = $1 AND pe.company_id = $2
	`

	entry, err := scanEntryRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

func (r *payrollRepository) GetEntryByEmployeePeriod(ctx context.Context, employeeID string, period string, companyID string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.employee_id = $1 AND pe.period = $2 AND pe.company_id = $3
	`

	entry, err := scanEntryRow(q.QueryRow(ctx, query, employeeID, period, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry by period: %w", err)
	}

	return entry, nil
}

func (r *payrollRepository) GetEntriesByCompanyID(ctx context.Context, companyID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.company_id = $1
		ORDER BY pe.period DESC, e.full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	return scanEntryRows(rows)
}

func (r *payrollRepository) ListEntries(ctx context.Context, companyID string, filter payroll.EntryFilter) ([]payroll.PayrollEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Period != nil {
		baseQuery += fmt.Sprintf(" AND pe.period = $%d", argIdx)
		args = append(args, *filter.Period)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pe.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pe.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY pe.period DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, payrollEntryColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntryRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, totalCount, nil
}

func (r *payrollRepository) SetEntriesStatus(ctx context.Context, ids []string, companyID string, status payroll.EntryStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, status, ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry status: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return payroll.ErrEntryNotFound
	}

	return nil
}

func (r *payrollRepository) DeleteEntry(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_entries WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (payroll.PayrollEntry, []byte, error) {
	var e payroll.PayrollEntry
	var deductionsBytes []byte
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.CompanyID, &e.Period, &e.PeriodType,
		&e.BasePay, &e.Overtime, &e.Bonuses, &e.OtherIncome, &e.GrossPay,
		&e.EmployeeSS, &e.EmployeeEducational, &e.IncomeTax,
		&e.BankLoan, &e.PersonalLoan, &deductionsBytes, &e.OtherWithholdings,
		&e.TotalDeductions, &e.NetPay,
		&e.EmployerSS, &e.EmployerEducational, &e.OccupationalRisk, &e.SeveranceFund,
		&e.Status, &e.CalculatedAt, &e.CreatedAt, &e.UpdatedAt,
		&e.EmployeeName, &e.EmployeeCedula,
	)
	return e, deductionsBytes, err
}

func scanEntryRow(row pgx.Row) (payroll.PayrollEntry, error) {
	e, deductionsBytes, err := scanEntry(row)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	_ = json.Unmarshal(deductionsBytes, &e.CustomDeductions)
	return e, nil
}

func scanEntryRows(rows pgx.Rows) ([]payroll.PayrollEntry, error) {
	var entries []payroll.PayrollEntry
	for rows.Next() {
		e, deductionsBytes, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		_ = json.Unmarshal(deductionsBytes, &e.CustomDeductions)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}
	return entries, nil
}

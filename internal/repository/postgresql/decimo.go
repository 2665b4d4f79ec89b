package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
)

type decimoRepository struct {
	db *database.DB
}

func NewDecimoRepository(db *database.DB) decimo.DecimoRepository {
	return &decimoRepository{db: db}
}

const decimoColumns = `
	d.id, d.employee_id, d.company_id, d.year,
	d.months_worked, d.total_income, d.gross_bonus,
	d.employee_ss, d.employer_ss, d.income_tax, d.total_deductions, d.net_bonus,
	d.installments, d.installments_paid, d.status,
	d.created_at, d.updated_at,
	e.full_name AS employee_name, e.cedula AS employee_cedula
`

func (r *decimoRepository) Upsert(ctx context.Context, record decimo.DecimoTercerMes) (decimo.DecimoTercerMes, error) {
	q := GetQuerier(ctx, r.db)

	installmentsJSON, _ := json.Marshal(record.Installments)

	query := `
		INSERT INTO decimo_tercer_mes (
			id, employee_id, company_id, year,
			months_worked, total_income, gross_bonus,
			employee_ss, employer_ss, income_tax, total_deductions, net_bonus,
			installments, installments_paid, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			months_worked = EXCLUDED.months_worked,
			total_income = EXCLUDED.total_income,
			gross_bonus = EXCLUDED.gross_bonus,
			employee_ss = EXCLUDED.employee_ss,
			employer_ss = EXCLUDED.employer_ss,
			income_tax = EXCLUDED.income_tax,
			total_deductions = EXCLUDED.total_deductions,
			net_bonus = EXCLUDED.net_bonus,
			installments = EXCLUDED.installments,
			installments_paid = EXCLUDED.installments_paid,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, year,
			months_worked, total_income, gross_bonus,
			employee_ss, employer_ss, income_tax, total_deductions, net_bonus,
			installments, installments_paid, status, created_at, updated_at
	`

	var d decimo.DecimoTercerMes
	var installmentsBytes []byte
	err := q.QueryRow(ctx, query,
		newID(), record.EmployeeID, record.CompanyID, record.Year,
		record.MonthsWorked, record.TotalIncome, record.GrossBonus,
		record.EmployeeSS, record.EmployerSS, record.IncomeTax, record.TotalDeductions, record.NetBonus,
		installmentsJSON, record.InstallmentsPaid, record.Status,
	).Scan(
		&d.ID, &d.EmployeeID, &d.CompanyID, &d.Year,
		&d.MonthsWorked, &d.TotalIncome, &d.GrossBonus,
		&d.EmployeeSS, &d.EmployerSS, &d.IncomeTax, &d.TotalDeductions, &d.NetBonus,
		&installmentsBytes, &d.InstallmentsPaid, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return decimo.DecimoTercerMes{}, fmt.Errorf("failed to upsert decimo record: %w", err)
	}
	_ = json.Unmarshal(installmentsBytes, &d.Installments)

	return d, nil
}

func (r *decimoRepository) GetByID(ctx context.Context, id string, companyID string) (decimo.DecimoTercerMes, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + decimoColumns + `
		FROM decimo_tercer_mes d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.id = $1 AND d.company_id = $2
	`

	record, err := scanDecimoRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimo.DecimoTercerMes{}, decimo.ErrNotFound
		}
		return decimo.DecimoTercerMes{}, fmt.Errorf("failed to get decimo record: %w", err)
	}

	return record, nil
}

func (r *decimoRepository) GetByEmployeeYear(ctx context.Context, employeeID string, year int, companyID string) (decimo.DecimoTercerMes, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + decimoColumns + `
		FROM decimo_tercer_mes d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.employee_id = $1 AND d.year = $2 AND d.company_id = $3
	`

	record, err := scanDecimoRow(q.QueryRow(ctx, query, employeeID, year, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimo.DecimoTercerMes{}, decimo.ErrNotFound
		}
		return decimo.DecimoTercerMes{}, fmt.Errorf("failed to get decimo record by year: %w", err)
	}

	return record, nil
}

func (r *decimoRepository) GetByCompanyYear(ctx context.Context, companyID string, year int) ([]decimo.DecimoTercerMes, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + decimoColumns + `
		FROM decimo_tercer_mes d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.company_id = $1 AND d.year = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list decimo records: %w", err)
	}
	defer rows.Close()

	var records []decimo.DecimoTercerMes
	for rows.Next() {
		record, err := scanDecimoRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decimo record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decimo records: %w", err)
	}

	return records, nil
}

func (r *decimoRepository) SetInstallmentsPaid(ctx context.Context, id string, companyID string, paid int, status decimo.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE decimo_tercer_mes
		SET installments_paid = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND company_id = $4
	`

	tag, err := q.Exec(ctx, query, paid, status, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update decimo installments: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return decimo.ErrNotFound
	}

	return nil
}

func scanDecimoRow(row rowScanner) (decimo.DecimoTercerMes, error) {
	var d decimo.DecimoTercerMes
	var installmentsBytes []byte
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.CompanyID, &d.Year,
		&d.MonthsWorked, &d.TotalIncome, &d.GrossBonus,
		&d.EmployeeSS, &d.EmployerSS, &d.IncomeTax, &d.TotalDeductions, &d.NetBonus,
		&installmentsBytes, &d.InstallmentsPaid, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
		&d.EmployeeName, &d.EmployeeCedula,
	)
	if err != nil {
		return decimo.DecimoTercerMes{}, err
	}
	_ = json.Unmarshal(installmentsBytes, &d.Installments)
	return d, nil
}

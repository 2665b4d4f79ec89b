package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
)

type sipeRepository struct {
	db *database.DB
}

func NewSIPERepository(db *database.DB) sipe.SIPERepository {
	return &sipeRepository{db: db}
}

const sipeColumns = `
	id, company_id, period,
	employee_ss, employer_ss, employee_educational, employer_educational,
	occupational_risk, income_tax, total_due, due_date,
	status, payment_reference, payment_date, created_at, updated_at
`

func (r *sipeRepository) Upsert(ctx context.Context, payment sipe.SIPEPayment) (sipe.SIPEPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sipe_payments (
			id, company_id, period,
			employee_ss, employer_ss, employee_educational, employer_educational,
			occupational_risk, income_tax, total_due, due_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (company_id, period) DO UPDATE SET
			employee_ss = EXCLUDED.employee_ss,
			employer_ss = EXCLUDED.employer_ss,
			employee_educational = EXCLUDED.employee_educational,
			employer_educational = EXCLUDED.employer_educational,
			occupational_risk = EXCLUDED.occupational_risk,
			income_tax = EXCLUDED.income_tax,
			total_due = EXCLUDED.total_due,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + sipeColumns

	payment, err := scanSIPERow(q.QueryRow(ctx, query,
		newID(), payment.CompanyID, payment.Period,
		payment.Totals.EmployeeSS, payment.Totals.EmployerSS,
		payment.Totals.EmployeeEducational, payment.Totals.EmployerEducational,
		payment.Totals.OccupationalRisk, payment.Totals.IncomeTax,
		payment.TotalDue, payment.DueDate, payment.Status,
	))
	if err != nil {
		return sipe.SIPEPayment{}, fmt.Errorf("failed to upsert SIPE payment: %w", err)
	}

	return payment, nil
}

func (r *sipeRepository) GetByID(ctx context.Context, id string, companyID string) (sipe.SIPEPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sipeColumns + `
		FROM sipe_payments
		WHERE id = $1 AND company_id = $2
	`

	payment, err := scanSIPERow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sipe.SIPEPayment{}, sipe.ErrPaymentNotFound
		}
		return sipe.SIPEPayment{}, fmt.Errorf("failed to get SIPE payment: %w", err)
	}

	return payment, nil
}

func (r *sipeRepository) GetByPeriod(ctx context.Context, companyID string, period string) (sipe.SIPEPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sipeColumns + `
		FROM sipe_payments
		WHERE company_id = $1 AND period = $2
	`

	payment, err := scanSIPERow(q.QueryRow(ctx, query, companyID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sipe.SIPEPayment{}, sipe.ErrPaymentNotFound
		}
		return sipe.SIPEPayment{}, fmt.Errorf("failed to get SIPE payment by period: %w", err)
	}

	return payment, nil
}

func (r *sipeRepository) GetByCompanyID(ctx context.Context, companyID string) ([]sipe.SIPEPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sipeColumns + `
		FROM sipe_payments
		WHERE company_id = $1
		ORDER BY period DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list SIPE payments: %w", err)
	}
	defer rows.Close()

	var payments []sipe.SIPEPayment
	for rows.Next() {
		payment, err := scanSIPERow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan SIPE payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate SIPE payments: %w", err)
	}

	return payments, nil
}

func (r *sipeRepository) MarkPaid(ctx context.Context, id string, companyID string, reference string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sipe_payments
		SET status = 'paid', payment_reference = $1, payment_date = NOW(), updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, reference, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark SIPE payment paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sipe.ErrPaymentNotFound
	}

	return nil
}

func scanSIPERow(row rowScanner) (sipe.SIPEPayment, error) {
	var p sipe.SIPEPayment
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Period,
		&p.Totals.EmployeeSS, &p.Totals.EmployerSS,
		&p.Totals.EmployeeEducational, &p.Totals.EmployerEducational,
		&p.Totals.OccupationalRisk, &p.Totals.IncomeTax,
		&p.TotalDue, &p.DueDate,
		&p.Status, &p.PaymentReference, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return sipe.SIPEPayment{}, err
	}
	return p, nil
}

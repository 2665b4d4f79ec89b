package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
)

type legalRepository struct {
	db *database.DB
}

func NewLegalRepository(db *database.DB) legal.LegalRepository {
	return &legalRepository{db: db}
}

// ========== PARAMETERS ==========

func (r *legalRepository) CreateParameter(ctx context.Context, param legal.Parameter) (legal.Parameter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO legal_parameters (id, company_id, type, percentage, active, effective_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, type, percentage, active, effective_date, created_at, updated_at
	`

	var p legal.Parameter
	err := q.QueryRow(ctx, query,
		newID(), param.CompanyID, param.Type, param.Percentage, param.Active, param.EffectiveDate,
	).Scan(
		&p.ID, &p.CompanyID, &p.Type, &p.Percentage, &p.Active, &p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return legal.Parameter{}, fmt.Errorf("failed to create legal parameter: %w", err)
	}

	return p, nil
}

func (r *legalRepository) GetParameterByID(ctx context.Context, id string, companyID string) (legal.Parameter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, type, percentage, active, effective_date, created_at, updated_at
		FROM legal_parameters
		WHERE id = $1 AND company_id = $2
	`

	var p legal.Parameter
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Type, &p.Percentage, &p.Active, &p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return legal.Parameter{}, legal.ErrParameterNotFound
		}
		return legal.Parameter{}, fmt.Errorf("failed to get legal parameter: %w", err)
	}

	return p, nil
}

func (r *legalRepository) GetParametersByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]legal.Parameter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, type, percentage, active, effective_date, created_at, updated_at
		FROM legal_parameters
		WHERE company_id = $1
	`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY type, effective_date DESC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal parameters: %w", err)
	}
	defer rows.Close()

	var params []legal.Parameter
	for rows.Next() {
		var p legal.Parameter
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Type, &p.Percentage, &p.Active, &p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan legal parameter: %w", err)
		}
		params = append(params, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate legal parameters: %w", err)
	}

	return params, nil
}

func (r *legalRepository) UpdateParameter(ctx context.Context, companyID string, req legal.UpdateParameterRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := "updated_at = NOW()"
	args := []interface{}{}
	argIdx := 1

	if req.Percentage != nil {
		setClauses += fmt.Sprintf(", percentage = $%d", argIdx)
		args = append(args, *req.Percentage)
		argIdx++
	}
	if req.Active != nil {
		setClauses += fmt.Sprintf(", active = $%d", argIdx)
		args = append(args, *req.Active)
		argIdx++
	}
	if req.EffectiveDate != nil {
		setClauses += fmt.Sprintf(", effective_date = $%d", argIdx)
		args = append(args, *req.EffectiveDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE legal_parameters
		SET %s
		WHERE id = $%d AND company_id = $%d
	`, setClauses, argIdx, argIdx+1)
	args = append(args, req.ID, companyID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update legal parameter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return legal.ErrParameterNotFound
	}

	return nil
}

func (r *legalRepository) DeleteParameter(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM legal_parameters WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete legal parameter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return legal.ErrParameterNotFound
	}

	return nil
}

// ========== ISR BRACKETS ==========

func (r *legalRepository) CreateBracket(ctx context.Context, bracket legal.ISRBracket) (legal.ISRBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO isr_brackets (id, company_id, from_amount, to_amount, rate, fixed_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, from_amount, to_amount, rate, fixed_amount, created_at, updated_at
	`

	var b legal.ISRBracket
	err := q.QueryRow(ctx, query,
		newID(), bracket.CompanyID, bracket.FromAmount, bracket.ToAmount, bracket.Rate, bracket.FixedAmount,
	).Scan(
		&b.ID, &b.CompanyID, &b.FromAmount, &b.ToAmount, &b.Rate, &b.FixedAmount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return legal.ISRBracket{}, fmt.Errorf("failed to create ISR bracket: %w", err)
	}

	return b, nil
}

func (r *legalRepository) GetBracketsByCompanyID(ctx context.Context, companyID string) ([]legal.ISRBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, from_amount, to_amount, rate, fixed_amount, created_at, updated_at
		FROM isr_brackets
		WHERE company_id = $1
		ORDER BY from_amount
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ISR brackets: %w", err)
	}
	defer rows.Close()

	var brackets []legal.ISRBracket
	for rows.Next() {
		var b legal.ISRBracket
		if err := rows.Scan(
			&b.ID, &b.CompanyID, &b.FromAmount, &b.ToAmount, &b.Rate, &b.FixedAmount, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ISR bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ISR brackets: %w", err)
	}

	return brackets, nil
}

func (r *legalRepository) DeleteBracket(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM isr_brackets WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete ISR bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return legal.ErrBracketNotFound
	}

	return nil
}

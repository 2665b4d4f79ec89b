package decimo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
	"github.com/planillapa/planilla-backend-go/internal/repository/postgresql"
)

type DecimoServiceImpl struct {
	db           *database.DB
	decimoRepo   decimo.DecimoRepository
	employeeRepo employee.EmployeeRepository
	payrollRepo  domainPayroll.PayrollRepository
	legalRepo    legal.LegalRepository
}

func NewDecimoService(
	db *database.DB,
	decimoRepo decimo.DecimoRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo domainPayroll.PayrollRepository,
	legalRepo legal.LegalRepository,
) decimo.DecimoService {
	return &DecimoServiceImpl{
		db:           db,
		decimoRepo:   decimoRepo,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		legalRepo:    legalRepo,
	}
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

func (s *DecimoServiceImpl) CalculateDecimo(ctx context.Context, req decimo.CalculateDecimoRequest) (decimo.DecimoResponse, error) {
	if err := req.Validate(); err != nil {
		return decimo.DecimoResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	record, err := s.calculateForEmployee(ctx, companyID, emp, req.Year, decimo.TaxShareDivisor(req.TaxDivisor))
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	return toDecimoResponse(record), nil
}

func (s *DecimoServiceImpl) GenerateDecimo(ctx context.Context, req decimo.GenerateDecimoRequest) ([]decimo.DecimoResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var out []decimo.DecimoResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, emp := range employees {
			record, err := s.calculateForEmployee(txCtx, companyID, emp, req.Year, decimo.TaxShareDivisor(req.TaxDivisor))
			if err != nil {
				// Records already settled stay as they are.
				if errors.Is(err, decimo.ErrAlreadyFullyPaid) {
					existing, getErr := s.decimoRepo.GetByEmployeeYear(txCtx, emp.ID, req.Year, companyID)
					if getErr != nil {
						return getErr
					}
					out = append(out, toDecimoResponse(existing))
					continue
				}
				return fmt.Errorf("calculate decimo for employee %s: %w", emp.ID, err)
			}
			out = append(out, toDecimoResponse(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *DecimoServiceImpl) GetDecimo(ctx context.Context, id string) (decimo.DecimoResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	record, err := s.decimoRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	return toDecimoResponse(record), nil
}

func (s *DecimoServiceImpl) ListByYear(ctx context.Context, year int) ([]decimo.DecimoResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.decimoRepo.GetByCompanyYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	out := make([]decimo.DecimoResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toDecimoResponse(r))
	}
	return out, nil
}

func (s *DecimoServiceImpl) PayInstallment(ctx context.Context, id string) (decimo.DecimoResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}

	record, err := s.decimoRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return decimo.DecimoResponse{}, err
	}
	if record.InstallmentsPaid >= len(record.Installments) {
		return decimo.DecimoResponse{}, decimo.ErrNoInstallmentsToPay
	}

	paid := record.InstallmentsPaid + 1
	status := decimo.StatusForPaid(paid)
	if err := s.decimoRepo.SetInstallmentsPaid(ctx, id, companyID, paid, status); err != nil {
		return decimo.DecimoResponse{}, err
	}

	record.InstallmentsPaid = paid
	record.Status = status
	return toDecimoResponse(record), nil
}

// calculateForEmployee recomputes and stores one employee's bonus, keeping
// the installments already paid. A fully paid record is final.
func (s *DecimoServiceImpl) calculateForEmployee(ctx context.Context, companyID string, emp employee.Employee, year int, divisor decimo.TaxShareDivisor) (decimo.DecimoTercerMes, error) {
	existing, err := s.decimoRepo.GetByEmployeeYear(ctx, emp.ID, year, companyID)
	if err != nil && !errors.Is(err, decimo.ErrNotFound) {
		return decimo.DecimoTercerMes{}, err
	}
	if err == nil && existing.Status == decimo.StatusFullyPaid {
		return decimo.DecimoTercerMes{}, decimo.ErrAlreadyFullyPaid
	}

	params, err := s.legalRepo.GetParametersByCompanyID(ctx, companyID, true)
	if err != nil {
		return decimo.DecimoTercerMes{}, err
	}
	brackets, err := s.legalRepo.GetBracketsByCompanyID(ctx, companyID)
	if err != nil {
		return decimo.DecimoTercerMes{}, err
	}
	entries, err := s.payrollRepo.GetEntriesByCompanyID(ctx, companyID)
	if err != nil {
		return decimo.DecimoTercerMes{}, err
	}

	calc, err := CalculateAnnualBonus(BonusInput{
		Employee:   emp,
		Entries:    entries,
		Year:       year,
		Divisor:    divisor,
		Parameters: params,
		Brackets:   brackets,
	})
	if err != nil {
		return decimo.DecimoTercerMes{}, err
	}

	paid := existing.InstallmentsPaid
	return s.decimoRepo.Upsert(ctx, decimo.DecimoTercerMes{
		EmployeeID: emp.ID,
		CompanyID:  companyID,
		Year:       year,

		MonthsWorked: calc.MonthsWorked,
		TotalIncome:  calc.TotalIncome,
		GrossBonus:   calc.GrossBonus,

		EmployeeSS:      calc.EmployeeSS,
		EmployerSS:      calc.EmployerSS,
		IncomeTax:       calc.IncomeTax,
		TotalDeductions: calc.TotalDeductions,
		NetBonus:        calc.NetBonus,

		Installments:     calc.Installments,
		InstallmentsPaid: paid,
		Status:           decimo.StatusForPaid(paid),
	})
}

func toDecimoResponse(r decimo.DecimoTercerMes) decimo.DecimoResponse {
	installments := make([]decimo.InstallmentResponse, 0, len(r.Installments))
	for _, inst := range r.Installments {
		installments = append(installments, decimo.InstallmentResponse{
			Number:  inst.Number,
			DueDate: inst.DueDate.Format(time.DateOnly),
			Amount:  inst.Amount,
			Paid:    inst.Number <= r.InstallmentsPaid,
		})
	}

	resp := decimo.DecimoResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Year:       r.Year,

		MonthsWorked: r.MonthsWorked,
		TotalIncome:  r.TotalIncome,
		GrossBonus:   r.GrossBonus,

		EmployeeSS:      r.EmployeeSS,
		EmployerSS:      r.EmployerSS,
		IncomeTax:       r.IncomeTax,
		TotalDeductions: r.TotalDeductions,
		NetBonus:        r.NetBonus,

		Installments:     installments,
		InstallmentsPaid: r.InstallmentsPaid,
		Status:           string(r.Status),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCedula != nil {
		resp.EmployeeCedula = *r.EmployeeCedula
	}
	return resp
}

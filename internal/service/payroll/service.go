package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
	"github.com/planillapa/planilla-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	legalRepo    legal.LegalRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	legalRepo legal.LegalRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
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

func (s *PayrollServiceImpl) CalculateEntry(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}
	if !emp.IsActive() {
		return payroll.PayrollEntryResponse{}, payroll.ErrEmployeeNotActive
	}

	// Paid entries are final; recalculation only replaces draft or
	// approved entries.
	existing, err := s.payrollRepo.GetEntryByEmployeePeriod(ctx, emp.ID, req.Period, companyID)
	if err != nil && !errors.Is(err, payroll.ErrEntryNotFound) {
		return payroll.PayrollEntryResponse{}, err
	}
	if err == nil && existing.Status == payroll.EntryStatusPaid {
		return payroll.PayrollEntryResponse{}, payroll.ErrEntryAlreadyPaid
	}

	params, brackets, err := s.legalConfig(ctx, companyID)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	calc, err := CalculatePeriod(PeriodInput{
		Employee:          emp,
		Period:            req.Period,
		PeriodType:        payroll.PeriodType(req.PeriodType),
		Overtime:          orZero(req.Overtime),
		Bonuses:           orZero(req.Bonuses),
		OtherIncome:       orZero(req.OtherIncome),
		OtherWithholdings: orZero(req.OtherWithholdings),
		Parameters:        params,
		Brackets:          brackets,
	})
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	saved, err := s.payrollRepo.UpsertEntry(ctx, entryFromCalculation(emp, companyID, calc))
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	return toEntryResponse(saved), nil
}

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.targetEmployees(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	params, brackets, err := s.legalConfig(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// The whole run commits or none of it does: a half-generated period
	// is worse than a failed one.
	var out []payroll.PayrollEntryResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, emp := range employees {
			existing, err := s.payrollRepo.GetEntryByEmployeePeriod(txCtx, emp.ID, req.Period, companyID)
			if err != nil && !errors.Is(err, payroll.ErrEntryNotFound) {
				return err
			}
			if err == nil && existing.Status == payroll.EntryStatusPaid {
				out = append(out, toEntryResponse(existing))
				continue
			}

			calc, err := CalculatePeriod(PeriodInput{
				Employee:   emp,
				Period:     req.Period,
				PeriodType: payroll.PeriodType(req.PeriodType),
				Parameters: params,
				Brackets:   brackets,
			})
			if err != nil {
				return fmt.Errorf("calculate payroll for employee %s: %w", emp.ID, err)
			}

			saved, err := s.payrollRepo.UpsertEntry(txCtx, entryFromCalculation(emp, companyID, calc))
			if err != nil {
				return err
			}
			out = append(out, toEntryResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.PayrollEntryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.EntryFilter) (payroll.ListEntriesResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListEntriesResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.payrollRepo.ListEntries(ctx, companyID, filter)
	if err != nil {
		return payroll.ListEntriesResponse{}, err
	}

	data := make([]payroll.PayrollEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, toEntryResponse(e))
	}

	return payroll.ListEntriesResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) ApproveEntries(ctx context.Context, req payroll.SetStatusRequest) error {
	return s.transition(ctx, req, payroll.EntryStatusDraft, payroll.EntryStatusApproved)
}

func (s *PayrollServiceImpl) MarkEntriesPaid(ctx context.Context, req payroll.SetStatusRequest) error {
	return s.transition(ctx, req, payroll.EntryStatusApproved, payroll.EntryStatusPaid)
}

func (s *PayrollServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if entry.Status == payroll.EntryStatusPaid {
		return payroll.ErrCannotDeletePaid
	}

	return s.payrollRepo.DeleteEntry(ctx, id, companyID)
}

// transition validates that every entry sits in the expected state before the
// bulk status change; one bad entry fails the whole batch.
func (s *PayrollServiceImpl) transition(ctx context.Context, req payroll.SetStatusRequest, from, to payroll.EntryStatus) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	for _, id := range req.EntryIDs {
		entry, err := s.payrollRepo.GetEntryByID(ctx, id, companyID)
		if err != nil {
			return err
		}
		if entry.Status != from {
			return fmt.Errorf("entry %s is %s: %w", id, entry.Status, payroll.ErrInvalidTransition)
		}
	}

	return s.payrollRepo.SetEntriesStatus(ctx, req.EntryIDs, companyID, to)
}

func (s *PayrollServiceImpl) targetEmployees(ctx context.Context, companyID string, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	}

	out := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
		if err != nil {
			return nil, err
		}
		if !emp.IsActive() {
			return nil, fmt.Errorf("employee %s: %w", id, payroll.ErrEmployeeNotActive)
		}
		out = append(out, emp)
	}
	return out, nil
}

func (s *PayrollServiceImpl) legalConfig(ctx context.Context, companyID string) ([]legal.Parameter, []legal.ISRBracket, error) {
	params, err := s.legalRepo.GetParametersByCompanyID(ctx, companyID, true)
	if err != nil {
		return nil, nil, err
	}
	brackets, err := s.legalRepo.GetBracketsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	return params, brackets, nil
}

func entryFromCalculation(emp employee.Employee, companyID string, calc payroll.Calculation) payroll.PayrollEntry {
	return payroll.PayrollEntry{
		EmployeeID: emp.ID,
		CompanyID:  companyID,
		Period:     calc.Period,
		PeriodType: calc.PeriodType,

		BasePay:     calc.BasePay,
		Overtime:    calc.Overtime,
		Bonuses:     calc.Bonuses,
		OtherIncome: calc.OtherIncome,
		GrossPay:    calc.GrossPay,

		EmployeeSS:          calc.EmployeeSS,
		EmployeeEducational: calc.EmployeeEducational,
		IncomeTax:           calc.IncomeTax,
		BankLoan:            calc.BankLoan,
		PersonalLoan:        calc.PersonalLoan,
		CustomDeductions:    calc.CustomDeductions,
		OtherWithholdings:   calc.OtherWithholdings,
		TotalDeductions:     calc.TotalDeductions,
		NetPay:              calc.NetPay,

		EmployerSS:          calc.EmployerSS,
		EmployerEducational: calc.EmployerEducational,
		OccupationalRisk:    calc.OccupationalRisk,
		SeveranceFund:       calc.SeveranceFund,

		Status:       payroll.EntryStatusDraft,
		CalculatedAt: time.Now(),
	}
}

func toEntryResponse(e payroll.PayrollEntry) payroll.PayrollEntryResponse {
	resp := payroll.PayrollEntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Period:     e.Period,
		PeriodType: string(e.PeriodType),

		BasePay:     e.BasePay,
		Overtime:    e.Overtime,
		Bonuses:     e.Bonuses,
		OtherIncome: e.OtherIncome,
		GrossPay:    e.GrossPay,

		EmployeeSS:          e.EmployeeSS,
		EmployeeEducational: e.EmployeeEducational,
		IncomeTax:           e.IncomeTax,
		BankLoan:            e.BankLoan,
		PersonalLoan:        e.PersonalLoan,
		CustomDeductions:    e.CustomDeductions,
		OtherWithholdings:   e.OtherWithholdings,
		TotalDeductions:     e.TotalDeductions,
		NetPay:              e.NetPay,

		EmployerSS:          e.EmployerSS,
		EmployerEducational: e.EmployerEducational,
		OccupationalRisk:    e.OccupationalRisk,
		SeveranceFund:       e.SeveranceFund,

		Status:       string(e.Status),
		CalculatedAt: e.CalculatedAt.Format(time.RFC3339),
	}
	if e.EmployeeName != nil {
		resp.EmployeeName = *e.EmployeeName
	}
	if e.EmployeeCedula != nil {
		resp.EmployeeCedula = *e.EmployeeCedula
	}
	return resp
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return decimal.Zero
}

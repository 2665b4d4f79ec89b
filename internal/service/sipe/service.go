package sipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/employee"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	domainPayroll "github.com/planillapa/planilla-backend-go/internal/domain/payroll"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
)

type SIPEServiceImpl struct {
	sipeRepo     sipe.SIPERepository
	employeeRepo employee.EmployeeRepository
	payrollRepo  domainPayroll.PayrollRepository
	legalRepo    legal.LegalRepository
}

func NewSIPEService(
	sipeRepo sipe.SIPERepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo domainPayroll.PayrollRepository,
	legalRepo legal.LegalRepository,
) sipe.SIPEService {
	return &SIPEServiceImpl{
		sipeRepo:     sipeRepo,
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

func (s *SIPEServiceImpl) CalculateRemittance(ctx context.Context, req sipe.CalculateSIPERequest) (sipe.SIPEPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	// A remitted period is final; only pending periods recalculate.
	existing, err := s.sipeRepo.GetByPeriod(ctx, companyID, req.Period)
	if err != nil && !errors.Is(err, sipe.ErrPaymentNotFound) {
		return sipe.SIPEPaymentResponse{}, err
	}
	if err == nil && existing.Status == sipe.StatusPaid {
		return sipe.SIPEPaymentResponse{}, sipe.ErrAlreadyPaid
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}
	entries, err := s.payrollRepo.GetEntriesByCompanyID(ctx, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}
	params, err := s.legalRepo.GetParametersByCompanyID(ctx, companyID, true)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}
	brackets, err := s.legalRepo.GetBracketsByCompanyID(ctx, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	summary, err := CalculateRemittance(RemittanceInput{
		Period:     req.Period,
		Entries:    entries,
		Employees:  employees,
		Parameters: params,
		Brackets:   brackets,
	})
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	saved, err := s.sipeRepo.Upsert(ctx, sipe.SIPEPayment{
		CompanyID: companyID,
		Period:    summary.Period,
		Totals:    summary.Totals,
		TotalDue:  summary.TotalDue,
		DueDate:   summary.DueDate,
		Status:    sipe.StatusPending,
	})
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	return toPaymentResponse(saved), nil
}

func (s *SIPEServiceImpl) GetPayment(ctx context.Context, id string) (sipe.SIPEPaymentResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	payment, err := s.sipeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	return toPaymentResponse(payment), nil
}

func (s *SIPEServiceImpl) ListPayments(ctx context.Context) ([]sipe.SIPEPaymentResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.sipeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]sipe.SIPEPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func (s *SIPEServiceImpl) MarkPaid(ctx context.Context, id string, req sipe.MarkPaidRequest) (sipe.SIPEPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	payment, err := s.sipeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}
	if payment.Status == sipe.StatusPaid {
		return sipe.SIPEPaymentResponse{}, sipe.ErrAlreadyPaid
	}

	if err := s.sipeRepo.MarkPaid(ctx, id, companyID, req.PaymentReference); err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	updated, err := s.sipeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return sipe.SIPEPaymentResponse{}, err
	}

	return toPaymentResponse(updated), nil
}

func toPaymentResponse(p sipe.SIPEPayment) sipe.SIPEPaymentResponse {
	resp := sipe.SIPEPaymentResponse{
		ID:     p.ID,
		Period: p.Period,

		EmployeeSS:          p.Totals.EmployeeSS,
		EmployerSS:          p.Totals.EmployerSS,
		EmployeeEducational: p.Totals.EmployeeEducational,
		EmployerEducational: p.Totals.EmployerEducational,
		OccupationalRisk:    p.Totals.OccupationalRisk,
		IncomeTax:           p.Totals.IncomeTax,
		TotalDue:            p.TotalDue,

		DueDate:          p.DueDate.Format(time.DateOnly),
		Status:           string(p.Status),
		PaymentReference: p.PaymentReference,
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &d
	}
	return resp
}

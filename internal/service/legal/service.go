package legal

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
)

type LegalServiceImpl struct {
	legalRepo legal.LegalRepository
}

func NewLegalService(legalRepo legal.LegalRepository) legal.LegalService {
	return &LegalServiceImpl{legalRepo: legalRepo}
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

func (s *LegalServiceImpl) CreateParameter(ctx context.Context, req legal.CreateParameterRequest) (legal.ParameterResponse, error) {
	if err := req.Validate(); err != nil {
		return legal.ParameterResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return legal.ParameterResponse{}, err
	}

	effectiveDate, err := time.Parse(time.DateOnly, req.EffectiveDate)
	if err != nil {
		return legal.ParameterResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.legalRepo.CreateParameter(ctx, legal.Parameter{
		CompanyID:     companyID,
		Type:          legal.RateType(req.Type),
		Percentage:    req.Percentage,
		Active:        active,
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		return legal.ParameterResponse{}, err
	}

	return toParameterResponse(created), nil
}

func (s *LegalServiceImpl) ListParameters(ctx context.Context, activeOnly bool) ([]legal.ParameterResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	params, err := s.legalRepo.GetParametersByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]legal.ParameterResponse, 0, len(params))
	for _, p := range params {
		out = append(out, toParameterResponse(p))
	}
	return out, nil
}

func (s *LegalServiceImpl) UpdateParameter(ctx context.Context, req legal.UpdateParameterRequest) (legal.ParameterResponse, error) {
	if err := req.Validate(); err != nil {
		return legal.ParameterResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return legal.ParameterResponse{}, err
	}

	if _, err := s.legalRepo.GetParameterByID(ctx, req.ID, companyID); err != nil {
		return legal.ParameterResponse{}, err
	}

	if err := s.legalRepo.UpdateParameter(ctx, companyID, req); err != nil {
		return legal.ParameterResponse{}, err
	}

	updated, err := s.legalRepo.GetParameterByID(ctx, req.ID, companyID)
	if err != nil {
		return legal.ParameterResponse{}, err
	}

	return toParameterResponse(updated), nil
}

func (s *LegalServiceImpl) DeleteParameter(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.legalRepo.DeleteParameter(ctx, id, companyID)
}

func (s *LegalServiceImpl) CreateBracket(ctx context.Context, req legal.CreateBracketRequest) (legal.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return legal.BracketResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return legal.BracketResponse{}, err
	}

	existing, err := s.legalRepo.GetBracketsByCompanyID(ctx, companyID)
	if err != nil {
		return legal.BracketResponse{}, err
	}
	for _, b := range existing {
		if bracketsOverlap(b, req) {
			return legal.BracketResponse{}, legal.ErrOverlappingBracket
		}
	}

	created, err := s.legalRepo.CreateBracket(ctx, legal.ISRBracket{
		CompanyID:   companyID,
		FromAmount:  req.FromAmount,
		ToAmount:    req.ToAmount,
		Rate:        req.Rate,
		FixedAmount: req.FixedAmount,
	})
	if err != nil {
		return legal.BracketResponse{}, err
	}

	return toBracketResponse(created), nil
}

func (s *LegalServiceImpl) ListBrackets(ctx context.Context) ([]legal.BracketResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	brackets, err := s.legalRepo.GetBracketsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]legal.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		out = append(out, toBracketResponse(b))
	}
	return out, nil
}

func (s *LegalServiceImpl) DeleteBracket(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.legalRepo.DeleteBracket(ctx, id, companyID)
}

// bracketsOverlap treats each bracket as the half-open range
// [from, to), with a nil upper bound meaning unbounded.
func bracketsOverlap(b legal.ISRBracket, req legal.CreateBracketRequest) bool {
	if b.ToAmount != nil && b.ToAmount.LessThanOrEqual(req.FromAmount) {
		return false
	}
	if req.ToAmount != nil && req.ToAmount.LessThanOrEqual(b.FromAmount) {
		return false
	}
	return true
}

func toParameterResponse(p legal.Parameter) legal.ParameterResponse {
	return legal.ParameterResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Type:          string(p.Type),
		Percentage:    p.Percentage,
		Active:        p.Active,
		EffectiveDate: p.EffectiveDate.Format(time.DateOnly),
	}
}

func toBracketResponse(b legal.ISRBracket) legal.BracketResponse {
	return legal.BracketResponse{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		FromAmount:  b.FromAmount,
		ToAmount:    b.ToAmount,
		Rate:        b.Rate,
		FixedAmount: b.FixedAmount,
	}
}

package company

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/company"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/fixtures"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
	"github.com/planillapa/planilla-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
	legalRepo   legal.LegalRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	legalRepo legal.LegalRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
		legalRepo:   legalRepo,
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

func (s *CompanyServiceImpl) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	// Company row and its seeded legal configuration land together.
	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.companyRepo.Create(txCtx, company.Company{
			Name:    req.Name,
			RUC:     req.RUC,
			Address: req.Address,
		})
		if err != nil {
			return err
		}

		for _, param := range fixtures.DefaultLegalParameters(created.ID, time.Now().Year()) {
			if _, err := s.legalRepo.CreateParameter(txCtx, param); err != nil {
				return fmt.Errorf("seed legal parameter %s: %w", param.Type, err)
			}
		}
		for _, bracket := range fixtures.DefaultISRBrackets(created.ID) {
			if _, err := s.legalRepo.CreateBracket(txCtx, bracket); err != nil {
				return fmt.Errorf("seed ISR bracket from %s: %w", bracket.FromAmount, err)
			}
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(created), nil
}

func (s *CompanyServiceImpl) GetCompany(ctx context.Context) (company.CompanyResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(c), nil
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		RUC:     c.RUC,
		Address: c.Address,
	}
}

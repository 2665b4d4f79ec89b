package company

import "context"

// CompanyService defines business logic for company registration and profile
type CompanyService interface {
	// CreateCompany registers a company and seeds its default legal
	// parameters and income tax table
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)

	// GetCompany returns the caller's company profile (companyID from JWT)
	GetCompany(ctx context.Context) (CompanyResponse, error)
}

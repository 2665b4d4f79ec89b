package legal

import "context"

// LegalRepository defines data access for legal parameters and ISR brackets.
// All methods take companyID to keep tenants isolated.
type LegalRepository interface {
	// Parameters
	CreateParameter(ctx context.Context, param Parameter) (Parameter, error)
	GetParameterByID(ctx context.Context, id string, companyID string) (Parameter, error)
	GetParametersByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Parameter, error)
	UpdateParameter(ctx context.Context, companyID string, req UpdateParameterRequest) error
	DeleteParameter(ctx context.Context, id string, companyID string) error

	// ISR brackets
	CreateBracket(ctx context.Context, bracket ISRBracket) (ISRBracket, error)
	GetBracketsByCompanyID(ctx context.Context, companyID string) ([]ISRBracket, error)
	DeleteBracket(ctx context.Context, id string, companyID string) error
}

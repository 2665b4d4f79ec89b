package legal

import "context"

// LegalService defines business logic for per-company legal configuration
// (companyID from JWT)
type LegalService interface {
	// Parameters
	CreateParameter(ctx context.Context, req CreateParameterRequest) (ParameterResponse, error)
	ListParameters(ctx context.Context, activeOnly bool) ([]ParameterResponse, error)
	UpdateParameter(ctx context.Context, req UpdateParameterRequest) (ParameterResponse, error)
	DeleteParameter(ctx context.Context, id string) error

	// ISR brackets
	CreateBracket(ctx context.Context, req CreateBracketRequest) (BracketResponse, error)
	ListBrackets(ctx context.Context) ([]BracketResponse, error)
	DeleteBracket(ctx context.Context, id string) error
}

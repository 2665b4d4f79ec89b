package decimo

import "context"

// DecimoService defines business logic for the year-end bonus (companyID from JWT)
type DecimoService interface {
	// CalculateDecimo computes and stores one employee's bonus for a year
	CalculateDecimo(ctx context.Context, req CalculateDecimoRequest) (DecimoResponse, error)

	// GenerateDecimo computes bonuses for every active employee of the company
	GenerateDecimo(ctx context.Context, req GenerateDecimoRequest) ([]DecimoResponse, error)

	// GetDecimo retrieves a single bonus record by ID
	GetDecimo(ctx context.Context, id string) (DecimoResponse, error)

	// ListByYear lists the company's bonus records for a year
	ListByYear(ctx context.Context, year int) ([]DecimoResponse, error)

	// PayInstallment marks the next unpaid installment as paid
	PayInstallment(ctx context.Context, id string) (DecimoResponse, error)
}

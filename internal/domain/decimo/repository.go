package decimo

import "context"

// DecimoRepository defines data access methods for year-end bonus records.
type DecimoRepository interface {
	// Upsert replaces any existing record for the same employee and year.
	Upsert(ctx context.Context, record DecimoTercerMes) (DecimoTercerMes, error)
	GetByID(ctx context.Context, id string, companyID string) (DecimoTercerMes, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int, companyID string) (DecimoTercerMes, error)
	GetByCompanyYear(ctx context.Context, companyID string, year int) ([]DecimoTercerMes, error)
	SetInstallmentsPaid(ctx context.Context, id string, companyID string, paid int, status Status) error
}

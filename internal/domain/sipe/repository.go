package sipe

import "context"

// SIPERepository defines data access methods for remittance payments.
type SIPERepository interface {
	// Upsert replaces any existing payment for the same company and period.
	Upsert(ctx context.Context, payment SIPEPayment) (SIPEPayment, error)
	GetByID(ctx context.Context, id string, companyID string) (SIPEPayment, error)
	GetByPeriod(ctx context.Context, companyID string, period string) (SIPEPayment, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]SIPEPayment, error)
	MarkPaid(ctx context.Context, id string, companyID string, reference string) error
}

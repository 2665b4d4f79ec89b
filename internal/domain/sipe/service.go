package sipe

import "context"

// SIPEService defines business logic for monthly remittances (companyID from JWT)
type SIPEService interface {
	// CalculateRemittance aggregates and stores the company's remittance
	// for one month. Recalculating a pending period replaces it.
	CalculateRemittance(ctx context.Context, req CalculateSIPERequest) (SIPEPaymentResponse, error)

	// GetPayment retrieves a single remittance by ID
	GetPayment(ctx context.Context, id string) (SIPEPaymentResponse, error)

	// ListPayments lists the company's remittances, newest period first
	ListPayments(ctx context.Context) ([]SIPEPaymentResponse, error)

	// MarkPaid records the payment reference and closes the remittance
	MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (SIPEPaymentResponse, error)
}

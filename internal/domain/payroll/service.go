package payroll

import "context"

// PayrollService defines business logic for payroll periods (companyID from JWT)
type PayrollService interface {
	// CalculateEntry computes and stores one employee's period entry.
	// Recalculating an existing draft or approved entry replaces it.
	CalculateEntry(ctx context.Context, req CalculatePayrollRequest) (PayrollEntryResponse, error)

	// GeneratePayroll computes entries for a whole period, for the given
	// employees or every active employee when none are given.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) ([]PayrollEntryResponse, error)

	// GetEntry retrieves a single entry by ID
	GetEntry(ctx context.Context, id string) (PayrollEntryResponse, error)

	// ListEntries lists entries with filters and pagination
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)

	// ApproveEntries moves draft entries to approved
	ApproveEntries(ctx context.Context, req SetStatusRequest) error

	// MarkEntriesPaid moves approved entries to paid. Paid entries are final.
	MarkEntriesPaid(ctx context.Context, req SetStatusRequest) error

	// DeleteEntry removes a draft or approved entry
	DeleteEntry(ctx context.Context, id string) error
}
